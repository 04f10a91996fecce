package matcher

import (
	"strings"

	"github.com/aalemi-dev/promassert/predicate"
)

// integerEpsilon is the tolerance applied by IntValue: counters and gauges
// carrying integral values are stored as float64, so exact equality is not a
// reliable test.
const integerEpsilon = 0.1

// Source-kind words used in expectation descriptions.
const (
	kindRegistry  = "registry"
	kindCollector = "collector"
)

// Matcher is an immutable-once-built match specification: a requested metric
// name, label predicate pairs in insertion order, an optional value
// predicate, and a presence flag. Build one with HasMetric or one of its
// siblings and narrow it with the chaining methods; every chaining method
// mutates and returns the same instance.
//
// A Matcher is reusable: each call to Match or Evaluate builds a fresh
// Result, so one matcher may be evaluated against any number of sources.
type Matcher struct {
	presence   bool
	sourceKind string
	name       string
	labels     []labelPair
	value      predicate.FloatPredicate
	err        error
}

func newMatcher(presence bool, sourceKind, name string) *Matcher {
	m := &Matcher{
		presence:   presence,
		sourceKind: sourceKind,
		name:       name,
	}
	if strings.TrimSpace(name) == "" {
		m.err = ErrInvalidSpec
	}

	return m
}

// HasMetric returns a matcher asserting that a registry-shaped source
// contains a metric with the given name.
//
// The name may be a family name or a derived sample name: for a histogram
// family "count" both "count" and "count_sum" reach its samples. Narrow the
// match with Label, LabelValue, LabelMatch, Value, ValueNear or IntValue.
func HasMetric(name string) *Matcher {
	return newMatcher(true, kindRegistry, name)
}

// DoesNotHaveMetric returns a matcher asserting that a registry-shaped
// source contains no metric with the given name (subject to any label and
// value constraints added afterwards).
func DoesNotHaveMetric(name string) *Matcher {
	return newMatcher(false, kindRegistry, name)
}

// CollectsMetric returns a matcher asserting that a collector-shaped source
// collects a metric with the given name.
func CollectsMetric(name string) *Matcher {
	return newMatcher(true, kindCollector, name)
}

// DoesNotCollectMetric returns a matcher asserting that a collector-shaped
// source does not collect a metric with the given name.
func DoesNotCollectMetric(name string) *Matcher {
	return newMatcher(false, kindCollector, name)
}

// Label constrains the match to samples carrying a label with exactly this
// name and exactly this value.
func (m *Matcher) Label(name, value string) *Matcher {
	return m.LabelMatch(predicate.Equals(name), predicate.Equals(value))
}

// LabelValue constrains the match to samples carrying a label with exactly
// this name and a value matching the given predicate. A nil predicate leaves
// the value unconstrained.
func (m *Matcher) LabelValue(name string, value predicate.StringPredicate) *Matcher {
	return m.LabelMatch(predicate.Equals(name), value)
}

// LabelMatch constrains the match with a predicate pair: the name predicate
// selects label names, the value predicate tests the selected labels'
// values. A non-exact name predicate may select several labels on one
// sample; each selection is tested independently.
//
// A nil predicate in either slot means that slot is unconstrained.
func (m *Matcher) LabelMatch(name, value predicate.StringPredicate) *Matcher {
	if name == nil {
		name = predicate.Anything()
	}
	if value == nil {
		value = predicate.Anything()
	}
	m.labels = append(m.labels, labelPair{name: name, value: value})

	return m
}

// Value constrains the match to samples whose value satisfies the predicate.
// A nil predicate disables value matching entirely.
func (m *Matcher) Value(value predicate.FloatPredicate) *Matcher {
	m.value = value

	return m
}

// ValueNear constrains the match to samples whose value is within epsilon of
// target. A nil target disables value matching entirely, it does not mean
// "match nothing".
func (m *Matcher) ValueNear(target *float64, epsilon float64) *Matcher {
	if target == nil {
		return m.Value(nil)
	}

	return m.Value(predicate.CloseTo(*target, epsilon))
}

// IntValue constrains the match to samples whose value is the given integer,
// within a tolerance of 0.1. Typically used for counters. A nil value
// disables value matching entirely.
func (m *Matcher) IntValue(value *int) *Matcher {
	if value == nil {
		return m.Value(nil)
	}
	target := float64(*value)

	return m.ValueNear(&target, integerEpsilon)
}
