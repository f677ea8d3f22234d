//go:build linux || darwin || freebsd || openbsd || netbsd || dragonfly

package mem

// SetMlockall replaces the mlockall syscall and returns a restore func.
func SetMlockall(fn func(flags int) error) (restore func()) {
	old := mlockall
	mlockall = fn
	return func() { mlockall = old }
}
