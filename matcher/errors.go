package matcher

import "errors"

// ErrInvalidSpec is returned when a matcher was constructed without at least
// a non-blank metric name. The error is recorded at construction time and
// surfaced by Match and Evaluate before any source is touched.
var ErrInvalidSpec = errors.New("cannot match a metric without at least a name")
