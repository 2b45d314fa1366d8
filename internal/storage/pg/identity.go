package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anonbbs-dev/anonbbs/internal/domain"
	internal_errors "github.com/anonbbs-dev/anonbbs/internal/errors"
)

// maxMintAttempts bounds the token-collision retry loop. With 66 bytes of
// session entropy a single collision is already astronomically unlikely,
// so exhausting the cap means the entropy source is broken.
const maxMintAttempts = 32

// MintIdentity creates a fresh anonymous user row. Unique-constraint
// violations on either token are expected (not exceptional) and retried
// with freshly drawn values.
func (s *Storage) MintIdentity(ctx context.Context, clientAddr string) (domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		session, err := s.tokens.SessionToken()
		if err != nil {
			return domain.User{}, fmt.Errorf("failed to generate session token: %w", err)
		}
		showId, err := s.tokens.ShowId()
		if err != nil {
			return domain.User{}, fmt.Errorf("failed to generate show id: %w", err)
		}

		user := domain.User{ShowId: showId, Session: session, LastIp: clientAddr}
		err = s.db.QueryRowContext(ctx, `
            INSERT INTO users (session, show_id, last_ip, last_time)
            VALUES ($1, $2, $3, now())
            RETURNING id, last_time
        `, session, showId, clientAddr).Scan(&user.Id, &user.LastSeen)
		if err != nil {
			if isUniqueViolation(err) {
				continue // token collision, redraw
			}
			return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
		}
		return user, nil
	}
	return domain.User{}, fmt.Errorf("token collision persisted after %d attempts", maxMintAttempts)
}

// ResolveSession looks an identity up by its secret token and records the
// contact as the new last-seen state. The update doubles as the lookup so
// resolution stays a single atomic statement.
func (s *Storage) ResolveSession(ctx context.Context, token, clientAddr string) (domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	user := domain.User{Session: token, LastIp: clientAddr}
	err := s.db.QueryRowContext(ctx, `
        UPDATE users
        SET last_time = now(),
            last_ip = $2
        WHERE session = $1
        RETURNING id, show_id, nickname, last_time
    `, token, clientAddr).Scan(&user.Id, &user.ShowId, &user.Nickname, &user.LastSeen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// stale or forged cookie, caller mints a new identity
			return domain.User{}, internal_errors.NotFound("Session not found")
		}
		return domain.User{}, fmt.Errorf("failed to resolve session: %w", err)
	}
	return user, nil
}

// UpdateNickname overwrites the display name of an existing identity.
func (s *Storage) UpdateNickname(ctx context.Context, userId domain.UserId, nickname string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := s.db.ExecContext(ctx, "UPDATE users SET nickname = $2 WHERE id = $1", userId, nickname)
	if err != nil {
		return fmt.Errorf("failed to update nickname: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for nickname update: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("User not found")
	}
	return nil
}
