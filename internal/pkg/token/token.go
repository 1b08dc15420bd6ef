package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes is the number of random bytes per access token. Hex encoding
// doubles it on the wire, so issued tokens are 256 characters long.
const tokenBytes = 128

// Issue generates an opaque access token. Tokens are issued once at account
// creation, stored verbatim and compared by exact string match; there is no
// expiry or rotation.
func Issue() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
