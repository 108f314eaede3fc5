package random

import (
	"crypto/rand"
	"encoding/base64"
)

// Random generates opaque tokens behind an interface so session creation is
// deterministic in tests.
type Random interface {
	// Token returns a new unguessable token with the given prefix.
	Token(prefix string) string
}

// CryptoRandom implements Random using crypto/rand.
type CryptoRandom struct{}

// New creates a CryptoRandom.
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Token returns prefix plus 128 bits of randomness, URL-safe encoded.
func (r *CryptoRandom) Token(prefix string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}
