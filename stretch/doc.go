// Package stretch turns a low-entropy passphrase into a 32-byte root secret
// using Argon2id (version 0x13), the memory-hard password hashing function of
// RFC 9106.
//
// # Overview
//
// A [Stretcher] draws a fresh 16-byte [Salt] from a cryptographically secure
// random source, then hashes the passphrase and salt under the caller's
// [Params]. The result is a root secret held in a [secret.Buffer]; it is never
// used as a key directly but fed to package schedule for key expansion.
//
//	salt, root, err := stretch.Stretch(passphrase, stretch.DefaultParams())
//	if err != nil {
//	    return err
//	}
//	defer root.Destroy()
//
// To re-derive the same root later, persist the salt and the parameters
// (see [EncodeRecord]) and call [Stretcher.StretchWithSalt] with them.
//
// # Why Argon2id
//
// Argon2id makes its first half-pass with data-independent memory access and
// the rest with data-dependent access. The first resists side-channel
// attacks, the second resists time-memory trade-offs; an attacker holding a
// stolen salt and ciphertext has to pay the full memory cost per guess.
//
// # Cost parameters
//
// The defaults are m=64 MiB, t=3, p=1, which derives in well under a second
// on commodity hardware. Parameters are checked with [Params.Validate] before
// any entropy is drawn or any hashing starts; a rejected set returns
// [ErrInvalidParameters] and produces no output at all.
//
// # Cancellation
//
// There is none. A running hash cannot be stopped without leaving fragments
// of its working memory behind, so every call runs to completion. Callers that
// need a responsive UI should run it on its own goroutine.
//
// # Salt record
//
// [EncodeRecord] renders the salt and parameters in a PHC-style string:
//
//	$argon2id$v=19$m=65536,t=3,p=1$<base64-salt>
//
// It contains no secret and is meant to be stored next to the ciphertext.
package stretch
