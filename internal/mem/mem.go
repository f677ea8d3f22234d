// Package mem locks the process address space so that secret material on
// the Go heap, such as Argon2 working memory, is never written to swap.
package mem

// ProtectionLevel indicates how well the process memory is protected.
type ProtectionLevel int

const (
	ProtectionNone    ProtectionLevel = iota // No memory protection available
	ProtectionPartial                        // Only locked buffers are protected
	ProtectionFull                           // All current and future pages are locked
)

func (l ProtectionLevel) String() string {
	switch l {
	case ProtectionFull:
		return "full"
	case ProtectionPartial:
		return "partial"
	default:
		return "none"
	}
}

// Lock attempts to lock all current and future pages in RAM.
//
// Lacking the privilege or the syscall is not an error: secret buffers are
// still locked individually, so the level degrades to ProtectionPartial.
func Lock() (ProtectionLevel, error) {
	return lockPlatform()
}

// Unlock releases a previous Lock.
func Unlock() error {
	return unlockPlatform()
}
