package predicate

// StringPredicate is a reusable boolean test over a string, with a
// human-readable description for diagnostics.
//
// Implementations must be side-effect free: Matches may be called any number
// of times, in any order, against any candidate.
type StringPredicate interface {
	// Matches reports whether the candidate satisfies the predicate.
	Matches(candidate string) bool

	// Describe returns a short human-readable description of the rule,
	// e.g. `equal to "value_one"`. It is embedded verbatim in assertion
	// failure messages.
	Describe() string
}

// FloatPredicate is a reusable boolean test over a float64 sample value,
// with a human-readable description for diagnostics.
type FloatPredicate interface {
	// Matches reports whether the candidate satisfies the predicate.
	Matches(candidate float64) bool

	// Describe returns a short human-readable description of the rule,
	// e.g. `a value within <0.1> of <3>`.
	Describe() string
}
