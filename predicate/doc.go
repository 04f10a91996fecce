// Package predicate provides reusable boolean tests over strings and floats,
// each paired with a human-readable description for diagnostics.
//
// Predicates are the building blocks of metric assertions: label names and
// label values are matched with StringPredicate, sample values with
// FloatPredicate. Every predicate knows how to describe itself, so a failed
// assertion can explain exactly which rule was violated and what it expected.
//
// # Built-in constructors
//
// Strings:
//   - Equals(s): exact equality
//   - Contains(s): substring match
//   - HasPrefix(s), HasSuffix(s): positional matches
//   - Anything(): always true (used to express "this slot is unconstrained")
//
// Floats:
//   - CloseTo(target, epsilon): |candidate - target| <= epsilon
//   - GreaterThan(bound), LessThan(bound): strict comparisons
//   - Between(min, max): inclusive range
//
// # Usage
//
//	p := predicate.Equals("value_one")
//	p.Matches("value_one") // true
//	p.Describe()           // `equal to "value_one"`
//
//	v := predicate.CloseTo(3.0, 0.1)
//	v.Matches(3.1) // true, the boundary is inclusive
//
// Custom predicates are supported: anything implementing StringPredicate or
// FloatPredicate participates in matching and diagnostics the same way the
// built-ins do.
//
// # Identity semantics
//
// Predicates are compared by identity, never by rule equality. Two separate
// Equals("x") values are distinct entries when accumulated into a matcher,
// matching the insertion-ordered pair model of the match engine.
package predicate
