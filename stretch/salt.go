package stretch

import (
	"encoding/hex"
	"fmt"
)

// SaltSize is the length of a salt in bytes.
const SaltSize = 16

// Salt is the non-secret random value mixed into every derivation.
// One salt belongs to exactly one derivation event; store it with the
// ciphertext so the same root can be derived again.
type Salt [SaltSize]byte

// String returns the lowercase hex encoding of s.
func (s Salt) String() string {
	return hex.EncodeToString(s[:])
}

// ParseSalt decodes a hex-encoded salt as produced by [Salt.String].
func ParseSalt(encoded string) (Salt, error) {
	var s Salt
	b, err := hex.DecodeString(encoded)
	if err != nil {
		return s, fmt.Errorf("stretch: invalid salt hex: %w", err)
	}
	if len(b) != SaltSize {
		return s, fmt.Errorf("stretch: salt must be %d bytes, got %d", SaltSize, len(b))
	}
	copy(s[:], b)
	return s, nil
}
