package matcher

// TB is the subset of testing.TB that Assert needs. Declaring the subset
// here keeps the testing package out of the import graph of production
// binaries that link this package.
type TB interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// Assert evaluates each matcher against the source and fails the test for
// every matcher that does not match, rendering the expectation and the
// mismatch explanation. Source adaptation failures and invalid matchers
// abort the test immediately.
//
//	matcher.Assert(t, registry,
//		matcher.HasMetric("count").Label("label_one", "value_one"),
//		matcher.DoesNotHaveMetric("fakes"),
//	)
func Assert(tb TB, source any, matchers ...*Matcher) {
	tb.Helper()

	for _, m := range matchers {
		result, err := m.Match(source)
		if err != nil {
			tb.Fatalf("metric assertion could not run: %v", err)

			return
		}
		if !result.Matched() {
			tb.Errorf("metric assertion failed\nexpected: %s\n     but: %s",
				m.Describe(), m.DescribeMismatch(result))
		}
	}
}
