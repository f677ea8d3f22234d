package schedule

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/hasbyte1/stegokeys/secret"
)

const (
	// KeySize is the length of every derived key in bytes.
	KeySize = 32

	// MaxOutput is the longest output HKDF-SHA256 can expand to
	// (255 × HashLen).
	MaxOutput = 255 * sha256.Size
)

// Info labels that separate the two key domains.
const (
	LabelEnc  = "enc"
	LabelPRNG = "prng"
)

// Keys holds the two keys derived from one root secret.
// Both are frozen; the caller owns them and must call [Keys.Destroy].
type Keys struct {
	// Enc is the 32-byte encryption key.
	Enc *secret.Buffer

	// PRNG is the 32-byte key for the embedding position generator.
	PRNG *secret.Buffer
}

// Destroy wipes both keys. It is safe to call more than once and on nil.
func (k *Keys) Destroy() {
	if k == nil {
		return
	}
	k.Enc.Destroy()
	k.PRNG.Destroy()
}

// DeriveKeys expands root into an encryption key and a PRNG key.
//
// It is deterministic and consumes no randomness. root is only read; the
// caller keeps ownership of it.
func DeriveKeys(root *secret.Buffer) (*Keys, error) {
	enc, err := Expand(root, LabelEnc, KeySize)
	if err != nil {
		return nil, err
	}
	prng, err := Expand(root, LabelPRNG, KeySize)
	if err != nil {
		enc.Destroy()
		return nil, err
	}
	return &Keys{Enc: enc, PRNG: prng}, nil
}

// Expand runs HKDF-Expand with root as the pseudo-random key and label as
// the info string, writing n bytes straight into locked memory.
//
// The result is frozen. Errors wrap [ErrExpansionFailed].
func Expand(root *secret.Buffer, label string, n int) (*secret.Buffer, error) {
	if !root.Alive() {
		return nil, fmt.Errorf("%w: root secret is empty or destroyed", ErrExpansionFailed)
	}
	if n < 1 || n > MaxOutput {
		return nil, fmt.Errorf("%w: output length must be in [1, %d], got %d",
			ErrExpansionFailed, MaxOutput, n)
	}

	out := secret.New(n)
	r := hkdf.Expand(sha256.New, root.Bytes(), []byte(label))
	if _, err := io.ReadFull(r, out.Bytes()); err != nil {
		out.Destroy()
		return nil, fmt.Errorf("%w: %v", ErrExpansionFailed, err)
	}
	out.Freeze()
	return out, nil
}
