package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anonbbs-dev/anonbbs/internal/domain"
	internal_errors "github.com/anonbbs-dev/anonbbs/internal/errors"
)

func (s *Storage) CreateBoard(ctx context.Context, name, introduction string) (domain.BoardId, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var id domain.BoardId
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO boards (name, introduction)
        VALUES ($1, $2)
        RETURNING id
    `, name, introduction).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return -1, internal_errors.Conflict("Board name already taken")
		}
		return -1, fmt.Errorf("failed to insert board: %w", err)
	}
	return id, nil
}

func (s *Storage) GetBoard(ctx context.Context, id domain.BoardId) (domain.Board, error) {
	return s.getBoard(ctx, s.db, id)
}

func (s *Storage) getBoard(ctx context.Context, q Querier, id domain.BoardId) (domain.Board, error) {
	var board domain.Board
	err := q.QueryRowContext(ctx, "SELECT id, name, introduction FROM boards WHERE id = $1", id).
		Scan(&board.Id, &board.Name, &board.Introduction)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Board{}, internal_errors.NotFound("Board not found")
		}
		return domain.Board{}, fmt.Errorf("failed to query board: %w", err)
	}
	return board, nil
}

func (s *Storage) ListBoards(ctx context.Context) ([]domain.Board, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, introduction FROM boards ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		var board domain.Board
		if err := rows.Scan(&board.Id, &board.Name, &board.Introduction); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		boards = append(boards, board)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return boards, nil
}

// UpdateBoard applies a partial edit: nil fields keep their stored value.
func (s *Storage) UpdateBoard(ctx context.Context, id domain.BoardId, update domain.BoardUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := s.db.ExecContext(ctx, `
        UPDATE boards
        SET name = COALESCE($2, name),
            introduction = COALESCE($3, introduction)
        WHERE id = $1
    `, id, update.Name, update.Introduction)
	if err != nil {
		if isUniqueViolation(err) {
			return internal_errors.Conflict("Board name already taken")
		}
		return fmt.Errorf("failed to update board: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for board update: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Board not found")
	}
	return nil
}
