package stretch

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/hasbyte1/stegokeys/secret"
)

// RootSize is the length of the root secret in bytes.
const RootSize = 32

// argon2Version is the Argon2 version implemented by x/crypto (0x13 = 19).
const argon2Version = argon2.Version

// idKey and wipe are swapped out by tests to observe transient buffers.
var (
	idKey = argon2.IDKey
	wipe  = secret.Wipe
)

// Stretcher derives root secrets from passphrases.
//
// # Thread safety
//
// A Stretcher is immutable after construction. It is safe for concurrent use
// as long as its random source is; the default, crypto/rand.Reader, is.
type Stretcher struct {
	rand io.Reader
}

// Option configures a [Stretcher].
type Option func(*Stretcher)

// WithRand sets the source of salt bytes. It must be cryptographically
// secure in production; tests can pass a deterministic reader to pin salts.
// A nil reader leaves the default in place.
func WithRand(r io.Reader) Option {
	return func(s *Stretcher) {
		if r != nil {
			s.rand = r
		}
	}
}

// NewStretcher returns a Stretcher reading salts from crypto/rand unless
// [WithRand] says otherwise.
func NewStretcher(opts ...Option) *Stretcher {
	s := &Stretcher{rand: rand.Reader}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stretch generates a fresh salt and derives the root secret for passphrase
// under params.
//
// The passphrase is only read. The returned root is frozen and owned by the
// caller, who must Destroy it. On error no salt is returned and no secret
// material survives.
func (s *Stretcher) Stretch(passphrase *secret.Buffer, params Params) (Salt, *secret.Buffer, error) {
	if err := checkInputs(passphrase, params); err != nil {
		return Salt{}, nil, err
	}

	var salt Salt
	if _, err := io.ReadFull(s.rand, salt[:]); err != nil {
		return Salt{}, nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}

	root, err := hashInto(passphrase.Bytes(), salt[:], params)
	if err != nil {
		return Salt{}, nil, err
	}
	return salt, root, nil
}

// StretchWithSalt derives the root secret for passphrase using a salt that
// was stored from an earlier derivation. It is deterministic: the same
// passphrase, salt and params always give the same root.
//
// It draws no randomness.
func (s *Stretcher) StretchWithSalt(passphrase *secret.Buffer, salt Salt, params Params) (*secret.Buffer, error) {
	if err := checkInputs(passphrase, params); err != nil {
		return nil, err
	}
	return hashInto(passphrase.Bytes(), salt[:], params)
}

func checkInputs(passphrase *secret.Buffer, params Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if !passphrase.Alive() {
		return ErrInvalidPassphrase
	}
	return nil
}

// hashInto runs Argon2id and moves the output into locked memory.
//
// x/crypto returns the tag in a fresh heap slice; it is wiped on every path,
// including a panic inside the primitive, which is reported as
// ErrHashingFailed.
func hashInto(passphrase, salt []byte, params Params) (root *secret.Buffer, err error) {
	var out []byte
	defer func() {
		wipe(out)
		if r := recover(); r != nil {
			root.Destroy()
			root = nil
			err = fmt.Errorf("%w: %v", ErrHashingFailed, r)
		}
	}()

	out = idKey(passphrase, salt, params.Time, params.MemoryKiB, uint8(params.Parallelism), RootSize)
	if len(out) != RootSize {
		return nil, fmt.Errorf("%w: expected %d output bytes, got %d", ErrHashingFailed, RootSize, len(out))
	}

	root = secret.New(RootSize)
	copy(root.Bytes(), out)
	root.Freeze()
	return root, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Package-level shortcuts
// ──────────────────────────────────────────────────────────────────────────────

var defaultStretcher = NewStretcher()

// Stretch calls [Stretcher.Stretch] on a Stretcher backed by crypto/rand.
func Stretch(passphrase *secret.Buffer, params Params) (Salt, *secret.Buffer, error) {
	return defaultStretcher.Stretch(passphrase, params)
}

// StretchWithSalt calls [Stretcher.StretchWithSalt] on the default Stretcher.
func StretchWithSalt(passphrase *secret.Buffer, salt Salt, params Params) (*secret.Buffer, error) {
	return defaultStretcher.StretchWithSalt(passphrase, salt, params)
}
