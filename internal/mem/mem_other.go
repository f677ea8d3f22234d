//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly

package mem

// Without mlockall only the individually locked secret buffers are kept out
// of swap.
func lockPlatform() (ProtectionLevel, error) {
	return ProtectionPartial, nil
}

func unlockPlatform() error {
	return nil
}
