package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateStateToken creates a cryptographically secure random token.
// Returns a hex-encoded string of 32 random bytes, suitable for use as an
// OAuth state parameter.
func GenerateStateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
