package utils

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

const (
	// 66 bytes of entropy, base64-rendered: the secret session token.
	sessionTokenBytes = 66
	// 4 bytes of entropy, hex-rendered: the public per-user display token.
	showIdBytes = 4
)

// TokenSource produces the two random tokens an identity is born with.
// Split into an interface so tests can force collisions.
type TokenSource interface {
	SessionToken() (string, error)
	ShowId() (string, error)
}

// CryptoTokenSource draws from crypto/rand.
type CryptoTokenSource struct{}

func (CryptoTokenSource) SessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func (CryptoTokenSource) ShowId() (string, error) {
	b := make([]byte, showIdBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
