package resettoken

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// tokenBytes is the raw entropy per token: 256 bits.
const tokenBytes = 32

// ErrFailedToGenerateToken indicates the system random source failed.
var ErrFailedToGenerateToken = errors.New("failed to generate reset token")

// Generate returns a new URL-safe random token as a 64-character hex string.
func Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrFailedToGenerateToken, err)
	}
	return hex.EncodeToString(buf), nil
}

// Digest returns the hex-encoded SHA-256 of a raw token. This is the only
// form in which a token may be persisted.
func Digest(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
