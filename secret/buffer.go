package secret

import (
	"errors"
	"io"
	"log/slog"

	"github.com/awnumar/memguard"
)

// Redacted is what a Buffer renders as through fmt and slog.
const Redacted = "[REDACTED]"

// Buffer is a fixed-size region of locked memory holding secret bytes.
//
// The zero value and the nil pointer are both empty, dead buffers.
// A Buffer is not safe for concurrent mutation; concurrent reads of a frozen
// buffer are fine.
type Buffer struct {
	lb *memguard.LockedBuffer
}

// New allocates a zero-filled Buffer of size bytes.
// The buffer is mutable until [Buffer.Freeze] is called.
func New(size int) *Buffer {
	return &Buffer{lb: memguard.NewBuffer(size)}
}

// FromBytes moves src into a new Buffer and wipes src.
//
// The caller must not reuse src afterwards: every byte of it has been
// overwritten with zero. The returned buffer is frozen.
func FromBytes(src []byte) *Buffer {
	return &Buffer{lb: memguard.NewBufferFromBytes(src)}
}

// FromReader reads exactly size bytes from r straight into locked memory.
// The returned buffer is frozen. A short read is an error and nothing that
// was read survives it.
func FromReader(r io.Reader, size int) (*Buffer, error) {
	lb, err := memguard.NewBufferFromReader(r, size)
	if err != nil {
		if lb != nil {
			lb.Destroy()
		}
		return nil, err
	}
	return &Buffer{lb: lb}, nil
}

// FromReaderUntil reads from r into locked memory until delim or EOF.
// The delimiter is not included. This is the way to read a passphrase line
// from stdin without it ever passing through a heap string.
//
// An empty result is returned as a dead buffer, not an error; callers that
// need a non-empty secret must check [Buffer.Size]. The returned buffer is
// frozen.
func FromReaderUntil(r io.Reader, delim byte) (*Buffer, error) {
	lb, err := memguard.NewBufferFromReaderUntil(r, delim)
	if err != nil && !errors.Is(err, io.EOF) {
		if lb != nil {
			lb.Destroy()
		}
		return nil, err
	}
	return &Buffer{lb: lb}, nil
}

// Bytes returns the live contents of the buffer.
//
// The slice aliases locked memory. It must not be retained past Destroy,
// appended to, or copied into ordinary heap memory. It is empty once the
// buffer is destroyed.
func (b *Buffer) Bytes() []byte {
	if !b.Alive() {
		return nil
	}
	return b.lb.Bytes()
}

// Size returns the number of secret bytes, or zero for a dead buffer.
func (b *Buffer) Size() int {
	if !b.Alive() {
		return 0
	}
	return b.lb.Size()
}

// Alive reports whether the buffer still holds memory.
func (b *Buffer) Alive() bool {
	return b != nil && b.lb != nil && b.lb.IsAlive()
}

// Freeze makes the buffer read-only. Writes through [Buffer.Bytes] after
// Freeze fault the process.
func (b *Buffer) Freeze() {
	if b.Alive() {
		b.lb.Freeze()
	}
}

// Melt makes a frozen buffer writable again.
func (b *Buffer) Melt() {
	if b.Alive() {
		b.lb.Melt()
	}
}

// Mutable reports whether the buffer accepts writes.
func (b *Buffer) Mutable() bool {
	return b.Alive() && b.lb.IsMutable()
}

// EqualTo compares the contents with buf in constant time.
func (b *Buffer) EqualTo(buf []byte) bool {
	if !b.Alive() {
		return false
	}
	return b.lb.EqualTo(buf)
}

// Destroy wipes the contents and releases the memory.
// It is safe to call more than once and on a nil Buffer.
func (b *Buffer) Destroy() {
	if b == nil || b.lb == nil {
		return
	}
	b.lb.Destroy()
}

// String implements fmt.Stringer without revealing the contents.
func (b *Buffer) String() string { return Redacted }

// GoString implements fmt.GoStringer without revealing the contents.
func (b *Buffer) GoString() string { return Redacted }

// LogValue implements slog.LogValuer without revealing the contents.
func (b *Buffer) LogValue() slog.Value { return slog.StringValue(Redacted) }
