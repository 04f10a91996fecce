package sample

import (
	"math"
	"strconv"
)

// formatLabelValue renders a float-valued label ("le", "quantile") the way
// the text exposition format spells it, so samples built from a registry and
// samples parsed from text carry identical label values.
func formatLabelValue(v float64) string {
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
