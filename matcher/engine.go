package matcher

import (
	"strings"

	"github.com/aalemi-dev/promassert/sample"
)

// Match adapts the source into family groups and evaluates the matcher
// against them. The source must be registry-shaped (prometheus.Gatherer) or
// collector-shaped (prometheus.Collector); see the sample package for the
// adaptation contract.
//
// A matcher built without a valid name returns ErrInvalidSpec before the
// source is touched.
func (m *Matcher) Match(source any) (*Result, error) {
	if m.err != nil {
		return nil, m.err
	}

	families, err := sample.FromSource(source)
	if err != nil {
		return nil, err
	}

	return m.Evaluate(families)
}

// Evaluate runs the match algorithm over an already-adapted sequence of
// family groups and returns a fresh Result. It never fails for well-formed
// matchers: an empty sequence is a normal "not found" outcome.
//
// Families are considered when the family name is a prefix of the requested
// name (the request may name a derived sample of the family). The found flag
// is recomputed per considered family rather than accumulated, and the scan
// stops early once a family satisfied the search, unless the matcher asserts
// absence without label or value constraints; in that mode the scan always
// completes so the result carries every observed name for diagnostics.
func (m *Matcher) Evaluate(families []sample.FamilyGroup) (*Result, error) {
	if m.err != nil {
		return nil, m.err
	}

	result := newResult()
	found := false

	for _, family := range families {
		result.recordFamily(family.Name)
		if !strings.HasPrefix(m.name, family.Name) {
			continue
		}

		found = (m.value == nil && len(m.labels) == 0) || m.matchSamples(family, result)
		if found && (m.value != nil || len(m.labels) > 0 || m.presence) {
			break
		}
	}

	result.matched = m.presence == found

	return result, nil
}

// matchSamples scans one family's samples. A sample is considered when the
// requested name is a prefix of the sample name, covering requests that name
// the bare family while the concrete sample carries a derived suffix.
//
// The returned flag is the one computed for the last considered sample; in
// presence mode the scan stops at the first satisfying sample.
func (m *Matcher) matchSamples(family sample.FamilyGroup, result *Result) bool {
	found := false

	for _, s := range family.Samples {
		result.recordSample(s.Name)
		if !strings.HasPrefix(s.Name, m.name) {
			continue
		}

		if m.value == nil && len(m.labels) == 0 {
			found = true
			if m.presence {
				break
			}

			continue
		}

		record := m.matchLabels(s)
		if record.fullyMatched() {
			result.addFoundValue(s.Name, s.Value)
			found = m.value == nil || m.value.Matches(s.Value)
			if found && m.presence {
				break
			}
		} else {
			record.ActualLabelNames = append([]string(nil), s.LabelNames...)
			record.ActualLabelValues = append([]string(nil), s.LabelValues...)
			result.unmatched = append(result.unmatched, record)
		}
	}

	return found
}

// matchLabels tests one sample against every label pair. Every pair starts
// out missing; a pair stops being missing once its name predicate matches
// some label name, and each such match additionally tests the paired value
// predicate against that label's value. Non-exact name predicates may match
// several labels; every occurrence is evaluated independently.
func (m *Matcher) matchLabels(s sample.Sample) UnmatchedLabelRecord {
	record := UnmatchedLabelRecord{}

	missing := make(map[int]struct{}, len(m.labels))
	for i := range m.labels {
		missing[i] = struct{}{}
	}

	for i := range s.LabelNames {
		for pairIndex, pair := range m.labels {
			if !pair.name.Matches(s.LabelNames[i]) {
				continue
			}

			delete(missing, pairIndex)
			if !pair.value.Matches(s.LabelValues[i]) {
				record.ValueMismatches = append(record.ValueMismatches, ValueMismatch{
					Name:     pair.name,
					Expected: pair.value,
					Actual:   s.LabelValues[i],
				})
			}
		}
	}

	// Report missing pairs in insertion order.
	for pairIndex, pair := range m.labels {
		if _, stillMissing := missing[pairIndex]; stillMissing {
			record.MissingNames = append(record.MissingNames, pair.name)
		}
	}

	return record
}
