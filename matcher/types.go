package matcher

import (
	"sort"

	"github.com/aalemi-dev/promassert/predicate"
)

// labelPair is one label constraint: a predicate over the label name paired
// with a predicate over the label value. Pairs are held in insertion order
// and compared by identity, so two semantically identical pairs are still
// distinct entries.
type labelPair struct {
	name  predicate.StringPredicate
	value predicate.StringPredicate
}

// ValueMismatch records a label whose name predicate matched but whose value
// predicate did not.
type ValueMismatch struct {
	// Name is the name predicate that selected the label.
	Name predicate.StringPredicate

	// Expected is the value predicate that the label value failed.
	Expected predicate.StringPredicate

	// Actual is the label value that was found.
	Actual string
}

// UnmatchedLabelRecord explains why one sample failed label matching: which
// name predicates found no label at all, and which labels were found but
// carried the wrong value.
type UnmatchedLabelRecord struct {
	// ActualLabelNames holds the sample's label names in sample order.
	ActualLabelNames []string

	// ActualLabelValues holds the sample's label values, positionally
	// paired with ActualLabelNames.
	ActualLabelValues []string

	// MissingNames holds the name predicates that matched no label name on
	// this sample, in pair insertion order.
	MissingNames []predicate.StringPredicate

	// ValueMismatches holds one entry per label whose name matched a
	// predicate but whose value failed the paired value predicate.
	ValueMismatches []ValueMismatch
}

// fullyMatched reports whether the sample satisfied every label constraint.
func (rec *UnmatchedLabelRecord) fullyMatched() bool {
	return len(rec.MissingNames) == 0 && len(rec.ValueMismatches) == 0
}

// Result is the diagnostic accumulator of one evaluation. It is created
// fresh at the start of every evaluation, filled as a side effect of the
// scan, and discarded after diagnostic rendering; no state is carried across
// evaluations.
type Result struct {
	matched     bool
	foundValues map[string][]float64
	unmatched   []UnmatchedLabelRecord
	familyNames map[string]struct{}
	sampleNames map[string]struct{}
}

func newResult() *Result {
	return &Result{
		foundValues: make(map[string][]float64),
		familyNames: make(map[string]struct{}),
		sampleNames: make(map[string]struct{}),
	}
}

// Matched reports the verdict of the evaluation: whether the presence
// expectation was met.
func (r *Result) Matched() bool {
	return r.matched
}

// FoundValues returns the values of samples whose labels fully matched,
// keyed by sample name. When the match failed on the value predicate alone,
// these are the values the assertion actually saw.
func (r *Result) FoundValues() map[string][]float64 {
	return r.foundValues
}

// UnmatchedLabels returns one record per scanned sample that failed label
// matching, in scan order.
func (r *Result) UnmatchedLabels() []UnmatchedLabelRecord {
	return r.unmatched
}

// FamilyNames returns every family name observed during the scan, sorted.
func (r *Result) FamilyNames() []string {
	return sortedKeys(r.familyNames)
}

// SampleNames returns every sample name observed during the scan, sorted.
// Samples are only observed inside families that passed the name prefix
// test, so this can be empty even when FamilyNames is not.
func (r *Result) SampleNames() []string {
	return sortedKeys(r.sampleNames)
}

func (r *Result) recordFamily(name string) {
	r.familyNames[name] = struct{}{}
}

func (r *Result) recordSample(name string) {
	r.sampleNames[name] = struct{}{}
}

func (r *Result) addFoundValue(name string, value float64) {
	r.foundValues[name] = append(r.foundValues[name], value)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
