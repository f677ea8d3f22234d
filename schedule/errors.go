package schedule

import "errors"

// ErrExpansionFailed is returned when HKDF-Expand cannot produce the
// requested output: the length is out of range, or the root secret is
// missing or destroyed. No partial key survives it.
var ErrExpansionFailed = errors.New("schedule: hkdf expansion failed")
