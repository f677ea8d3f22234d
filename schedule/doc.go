// Package schedule expands a root secret into independent, purpose-bound
// keys with HKDF-SHA256 (RFC 5869).
//
// Only the Expand half of HKDF is used. The root secret comes out of Argon2id
// and is already uniformly random, so it serves directly as the
// pseudo-random key; running Extract over it would add nothing.
//
// Each key is the output of its own Expand call with its own info label:
//
//	enc  = HKDF-Expand(root, "enc",  32)
//	prng = HKDF-Expand(root, "prng", 32)
//
// The labels, not any property of the root, are what make the two keys
// independent. Never derive several keys by slicing one longer expansion.
package schedule
