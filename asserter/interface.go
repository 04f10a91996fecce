package asserter

import (
	"context"

	"github.com/aalemi-dev/promassert/matcher"
)

// Checker provides an interface for running metric assertions against a live
// metric source.
//
// This interface is implemented by the concrete *Asserter type.
type Checker interface {
	// Check evaluates each matcher against a fresh snapshot of the metric
	// source. Matcher failures are logged and returned wrapped in
	// ErrAssertionFailed; by default all failures of a run are aggregated
	// into the returned error. A nil return means every matcher matched.
	Check(ctx context.Context, matchers ...*matcher.Matcher) error
}
