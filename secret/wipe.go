package secret

import "github.com/awnumar/memguard"

// Wipe overwrites b with zeros.
//
// Use it on heap slices that briefly held secret bytes, such as the output of
// a primitive that returns a fresh []byte, once their contents have been
// moved into a Buffer.
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}

// IsZero reports whether every byte of b is zero.
func IsZero(b []byte) bool {
	var acc byte
	for _, c := range b {
		acc |= c
	}
	return acc == 0
}
