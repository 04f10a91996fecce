package predicate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// equals matches a string exactly.
type equals struct {
	expected string
}

// Equals returns a predicate that matches candidates equal to expected.
func Equals(expected string) StringPredicate {
	return &equals{expected: expected}
}

func (p *equals) Matches(candidate string) bool {
	return candidate == p.expected
}

func (p *equals) Describe() string {
	return fmt.Sprintf("equal to %q", p.expected)
}

// contains matches any string containing a substring.
type contains struct {
	substring string
}

// Contains returns a predicate that matches candidates containing substring.
func Contains(substring string) StringPredicate {
	return &contains{substring: substring}
}

func (p *contains) Matches(candidate string) bool {
	return strings.Contains(candidate, p.substring)
}

func (p *contains) Describe() string {
	return fmt.Sprintf("a string containing %q", p.substring)
}

// hasPrefix matches any string starting with a prefix.
type hasPrefix struct {
	prefix string
}

// HasPrefix returns a predicate that matches candidates starting with prefix.
func HasPrefix(prefix string) StringPredicate {
	return &hasPrefix{prefix: prefix}
}

func (p *hasPrefix) Matches(candidate string) bool {
	return strings.HasPrefix(candidate, p.prefix)
}

func (p *hasPrefix) Describe() string {
	return fmt.Sprintf("a string starting with %q", p.prefix)
}

// hasSuffix matches any string ending with a suffix.
type hasSuffix struct {
	suffix string
}

// HasSuffix returns a predicate that matches candidates ending with suffix.
func HasSuffix(suffix string) StringPredicate {
	return &hasSuffix{suffix: suffix}
}

func (p *hasSuffix) Matches(candidate string) bool {
	return strings.HasSuffix(candidate, p.suffix)
}

func (p *hasSuffix) Describe() string {
	return fmt.Sprintf("a string ending with %q", p.suffix)
}

// anything matches every string. It expresses "this slot is unconstrained"
// without degrading into a silent no-op: the rule is explicit and described.
type anything struct{}

// Anything returns a predicate that matches every candidate.
func Anything() StringPredicate {
	return &anything{}
}

func (p *anything) Matches(string) bool {
	return true
}

func (p *anything) Describe() string {
	return "anything"
}

// closeTo matches values within epsilon of a target, boundary inclusive.
type closeTo struct {
	target  float64
	epsilon float64
}

// CloseTo returns a predicate matching candidates v with |v - target| <= epsilon.
// The boundary is inclusive: a candidate exactly epsilon away still matches.
func CloseTo(target, epsilon float64) FloatPredicate {
	return &closeTo{target: target, epsilon: epsilon}
}

func (p *closeTo) Matches(candidate float64) bool {
	return math.Abs(candidate-p.target) <= p.epsilon
}

func (p *closeTo) Describe() string {
	return fmt.Sprintf("a value within <%s> of <%s>", formatFloat(p.epsilon), formatFloat(p.target))
}

// greaterThan matches values strictly above a bound.
type greaterThan struct {
	bound float64
}

// GreaterThan returns a predicate matching candidates strictly greater than bound.
func GreaterThan(bound float64) FloatPredicate {
	return &greaterThan{bound: bound}
}

func (p *greaterThan) Matches(candidate float64) bool {
	return candidate > p.bound
}

func (p *greaterThan) Describe() string {
	return fmt.Sprintf("a value greater than <%s>", formatFloat(p.bound))
}

// lessThan matches values strictly below a bound.
type lessThan struct {
	bound float64
}

// LessThan returns a predicate matching candidates strictly less than bound.
func LessThan(bound float64) FloatPredicate {
	return &lessThan{bound: bound}
}

func (p *lessThan) Matches(candidate float64) bool {
	return candidate < p.bound
}

func (p *lessThan) Describe() string {
	return fmt.Sprintf("a value less than <%s>", formatFloat(p.bound))
}

// between matches values inside an inclusive range.
type between struct {
	min float64
	max float64
}

// Between returns a predicate matching candidates v with min <= v <= max.
func Between(min, max float64) FloatPredicate {
	return &between{min: min, max: max}
}

func (p *between) Matches(candidate float64) bool {
	return candidate >= p.min && candidate <= p.max
}

func (p *between) Describe() string {
	return fmt.Sprintf("a value between <%s> and <%s>", formatFloat(p.min), formatFloat(p.max))
}

// formatFloat renders a float the way diagnostic output expects: shortest
// representation that round-trips, with canonical infinity/NaN spellings.
func formatFloat(v float64) string {
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
