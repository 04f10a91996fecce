package matcher

import (
	"math"
	"strconv"
)

// Ptr returns a pointer to the given value. Helper for the optional-value
// chaining methods:
//
//	matcher.HasMetric("count").ValueNear(matcher.Ptr(3.0), 0.1)
//	matcher.HasMetric("count").IntValue(matcher.Ptr(3))
func Ptr[T any](v T) *T {
	return &v
}

// formatValue renders a sample value for diagnostic output: shortest
// representation that round-trips, canonical infinity/NaN spellings.
func formatValue(v float64) string {
	switch {
	case math.IsInf(v, +1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return "NaN"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
