package derive

import "github.com/hasbyte1/stegokeys/secret"

// SetRootReleasedHook installs fn to observe the root secret after the
// pipeline releases it, and returns a func that removes it.
func SetRootReleasedHook(fn func(*secret.Buffer)) (restore func()) {
	old := testHookRootReleased
	testHookRootReleased = fn
	return func() { testHookRootReleased = old }
}
