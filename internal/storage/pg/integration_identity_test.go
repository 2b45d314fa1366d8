package pg

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonbbs-dev/anonbbs/internal/utils"
)

// collidingTokenSource returns the same tokens for the first `collisions`
// session draws, then falls back to real entropy. Used to prove minting
// survives unique-constraint violations.
type collidingTokenSource struct {
	mu         sync.Mutex
	collisions int
	fixed      string
	real       utils.CryptoTokenSource
}

func (c *collidingTokenSource) SessionToken() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.collisions > 0 {
		c.collisions--
		return c.fixed, nil
	}
	return c.real.SessionToken()
}

func (c *collidingTokenSource) ShowId() (string, error) {
	return c.real.ShowId()
}

func TestMintIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh identity has empty nickname and both tokens", func(t *testing.T) {
		user, err := storage.MintIdentity(ctx, "198.51.100.7")
		require.NoError(t, err)
		assert.Positive(t, user.Id)
		assert.NotEmpty(t, user.Session)
		assert.NotEmpty(t, user.ShowId)
		assert.Empty(t, user.Nickname)
		assert.Equal(t, "198.51.100.7", user.LastIp)
		assert.False(t, user.LastSeen.IsZero())
	})

	t.Run("token collision is retried until success", func(t *testing.T) {
		first := mustMintUser(t)

		overridden := &Storage{db: storage.db, tokens: &collidingTokenSource{collisions: 3, fixed: first.Session}}
		user, err := overridden.MintIdentity(ctx, "198.51.100.8")
		require.NoError(t, err, "collisions must be recovered internally")
		assert.NotEqual(t, first.Session, user.Session)
	})

	t.Run("concurrent minting never shares tokens", func(t *testing.T) {
		const minters = 16
		var wg sync.WaitGroup
		results := make([]string, minters)
		for i := 0; i < minters; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				user, err := storage.MintIdentity(ctx, "203.0.113.1")
				assert.NoError(t, err)
				results[i] = user.Session
			}(i)
		}
		wg.Wait()

		seen := make(map[string]struct{}, minters)
		for _, session := range results {
			_, dup := seen[session]
			assert.False(t, dup, "two identities share a session token")
			seen[session] = struct{}{}
		}
	})
}

func TestResolveSession(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token resolves to the same user id", func(t *testing.T) {
		minted := mustMintUser(t)

		resolved, err := storage.ResolveSession(ctx, minted.Session, "198.51.100.9")
		require.NoError(t, err)
		assert.Equal(t, minted.Id, resolved.Id)
		assert.Equal(t, minted.ShowId, resolved.ShowId)
		assert.Equal(t, "198.51.100.9", resolved.LastIp)
	})

	t.Run("last seen time is monotonically non-decreasing", func(t *testing.T) {
		minted := mustMintUser(t)

		first, err := storage.ResolveSession(ctx, minted.Session, "198.51.100.9")
		require.NoError(t, err)
		second, err := storage.ResolveSession(ctx, minted.Session, "198.51.100.9")
		require.NoError(t, err)
		assert.False(t, second.LastSeen.Before(first.LastSeen))
		assert.False(t, first.LastSeen.Before(minted.LastSeen))
	})

	t.Run("unknown token is not found, not fatal", func(t *testing.T) {
		_, err := storage.ResolveSession(ctx, "forged-or-stale-token", "198.51.100.9")
		requireStatusCode(t, err, http.StatusNotFound)
	})

	t.Run("malformed token is not found", func(t *testing.T) {
		_, err := storage.ResolveSession(ctx, "\x00\xff not base64 at all", "198.51.100.9")
		requireStatusCode(t, err, http.StatusNotFound)
	})
}

func TestUpdateNickname(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites nickname", func(t *testing.T) {
		user := mustMintUser(t)

		require.NoError(t, storage.UpdateNickname(ctx, user.Id, "anon123"))
		resolved, err := storage.ResolveSession(ctx, user.Session, user.LastIp)
		require.NoError(t, err)
		assert.Equal(t, "anon123", resolved.Nickname)

		// unconditional overwrite, empty is allowed
		require.NoError(t, storage.UpdateNickname(ctx, user.Id, ""))
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		err := storage.UpdateNickname(ctx, 999_999_999, "ghost")
		requireStatusCode(t, err, http.StatusNotFound)
	})
}
