package predicate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/promassert/predicate"
)

func TestStringPredicates(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		pred      predicate.StringPredicate
		candidate string
		matches   bool
	}{
		{"equals match", predicate.Equals("value_one"), "value_one", true},
		{"equals mismatch", predicate.Equals("value_one"), "value_two", false},
		{"equals empty", predicate.Equals(""), "", true},
		{"contains match", predicate.Contains("4"), "label 4 value", true},
		{"contains mismatch", predicate.Contains("myString"), "value22", false},
		{"contains empty always matches", predicate.Contains(""), "anything", true},
		{"prefix match", predicate.HasPrefix("value"), "value22", true},
		{"prefix mismatch", predicate.HasPrefix("value"), "22value", false},
		{"suffix match", predicate.HasSuffix("_one"), "label_one", true},
		{"suffix mismatch", predicate.HasSuffix("_one"), "one_label", false},
		{"anything", predicate.Anything(), "literally anything", true},
		{"anything empty", predicate.Anything(), "", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.matches, tc.pred.Matches(tc.candidate))
		})
	}
}

func TestFloatPredicates(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		pred      predicate.FloatPredicate
		candidate float64
		matches   bool
	}{
		{"close to inside", predicate.CloseTo(3.0, 0.1), 3.05, true},
		{"close to exact target", predicate.CloseTo(3.0, 0.1), 3.0, true},
		{"close to outside", predicate.CloseTo(3.0, 0.1), 3.2, false},
		{"close to negative target", predicate.CloseTo(-3.4, 0.01), -3.4, true},
		{"greater than above", predicate.GreaterThan(0), 3.0, true},
		{"greater than equal", predicate.GreaterThan(3.0), 3.0, false},
		{"greater than below", predicate.GreaterThan(0), -3.4, false},
		{"less than below", predicate.LessThan(3.4), -3.4, true},
		{"less than equal", predicate.LessThan(3.4), 3.4, false},
		{"between inside", predicate.Between(-4, 4), 3.0, true},
		{"between lower boundary", predicate.Between(3.0, 4.0), 3.0, true},
		{"between upper boundary", predicate.Between(2.0, 3.0), 3.0, true},
		{"between outside", predicate.Between(0, 1), 3.0, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.matches, tc.pred.Matches(tc.candidate))
		})
	}
}

// The epsilon boundary is inclusive: a candidate exactly epsilon away from the
// target still matches.
func TestCloseToBoundaryIsInclusive(t *testing.T) {
	t.Parallel()
	p := predicate.CloseTo(3.0, 0.5)

	assert.True(t, p.Matches(3.5))
	assert.True(t, p.Matches(2.5))
	assert.False(t, p.Matches(math.Nextafter(3.5, 4)))
}

func TestDescriptions(t *testing.T) {
	t.Parallel()
	require.Equal(t, `equal to "value_one"`, predicate.Equals("value_one").Describe())
	require.Equal(t, `a string containing "4"`, predicate.Contains("4").Describe())
	require.Equal(t, `a string starting with "value"`, predicate.HasPrefix("value").Describe())
	require.Equal(t, `a string ending with "_one"`, predicate.HasSuffix("_one").Describe())
	require.Equal(t, "anything", predicate.Anything().Describe())
	require.Equal(t, "a value within <0.1> of <3>", predicate.CloseTo(3, 0.1).Describe())
	require.Equal(t, "a value greater than <4>", predicate.GreaterThan(4).Describe())
	require.Equal(t, "a value less than <3.4>", predicate.LessThan(3.4).Describe())
	require.Equal(t, "a value between <1> and <2>", predicate.Between(1, 2).Describe())
}

// Predicates are compared by identity: two Equals with the same rule are
// distinct values.
func TestPredicateIdentity(t *testing.T) {
	t.Parallel()
	first := predicate.Equals("x")
	second := predicate.Equals("x")

	assert.False(t, first == second)
	assert.True(t, first == first)
}
