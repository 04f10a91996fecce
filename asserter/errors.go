package asserter

import "errors"

// Package-level sentinel errors. Callers match them with errors.Is.
var (
	// ErrAssertionFailed wraps every matcher failure reported by Check.
	ErrAssertionFailed = errors.New("metric assertion failed")
)
