package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

const resetTokenSize = 32

// GenerateResetToken returns a fresh random reset secret and its
// SHA-256 digest. Only the digest may be persisted, the raw value is
// delivered to the user out of band
func GenerateResetToken() (raw, digest string, err error) {
	b := make([]byte, resetTokenSize)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}

	raw = hex.EncodeToString(b)
	return raw, DigestToken(raw), nil
}

// DigestToken derives the storable digest of a raw token. The hash is
// deliberately unsalted so the stored value can be found again from
// the raw token the user presents
func DigestToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
