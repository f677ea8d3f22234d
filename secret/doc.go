// Package secret holds key material in memory that the garbage collector
// never sees.
//
// A [Buffer] is backed by a memguard LockedBuffer: the pages are allocated
// outside the Go heap, locked against swapping, surrounded by guard pages and
// overwritten with zeros when the buffer is destroyed. Go slices that back an
// ordinary []byte can be copied by append, moved by the runtime or left
// behind after a resize; a Buffer is never reallocated, so the only copy of
// the secret is the one that [Buffer.Destroy] wipes.
//
// # Lifetime
//
// Every Buffer has exactly one owner, and that owner must arrange for
// Destroy to run on every exit path:
//
//	root, err := stretcher.Stretch(passphrase, params)
//	if err != nil {
//	    return err
//	}
//	defer root.Destroy()
//
// Destroy is idempotent and safe on a nil Buffer.
//
// # Redaction
//
// Buffer implements [fmt.Stringer], [fmt.GoStringer] and [slog.LogValuer]
// and renders as "[REDACTED]" through all three, so passing a Buffer to a
// logger or a format verb never prints its contents.
package secret
