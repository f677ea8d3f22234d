package stretch

import "errors"

// Sentinel errors returned by stretching operations.
//
// Use [errors.Is] for comparisons:
//
//	_, root, err := stretch.Stretch(passphrase, params)
//	if errors.Is(err, stretch.ErrInvalidParameters) {
//	    // ask the user for different cost settings
//	}
var (
	// ErrInvalidParameters is returned when a cost configuration is not
	// accepted by Argon2id. It is reported before any random bytes are drawn
	// and before any hashing work starts.
	ErrInvalidParameters = errors.New("stretch: invalid cost parameters")

	// ErrInvalidPassphrase is returned when the passphrase buffer is nil or
	// has already been destroyed.
	ErrInvalidPassphrase = errors.New("stretch: passphrase buffer is empty or destroyed")

	// ErrHashingFailed is returned when the password hashing primitive fails
	// internally. No partial root secret survives it.
	ErrHashingFailed = errors.New("stretch: argon2id hashing failed")

	// ErrRandomSource is returned when the salt cannot be read from the
	// random source.
	ErrRandomSource = errors.New("stretch: failed to generate salt")

	// ErrInvalidRecord is returned by [DecodeRecord] when a salt record is
	// malformed, uses another algorithm or version, or carries a salt of the
	// wrong length.
	ErrInvalidRecord = errors.New("stretch: invalid salt record")
)
