package matcher

import (
	"fmt"
	"sort"
	"strings"
)

// Diagnostic layout constants. The indentation aligns continuation lines
// under typical assertion-failure prefixes; list entries carry a literal
// "- " bullet.
const (
	indentation = "          "
	bullet      = "- "
)

// Describe renders the expectation: the source kind, negation, requested
// name, and any value and label constraints.
func (m *Matcher) Describe() string {
	var b strings.Builder

	b.WriteString("a ")
	b.WriteString(m.sourceKind)
	if !m.presence {
		b.WriteString(" not")
	}
	b.WriteString(" containing a sample with name: ")
	b.WriteString(fmt.Sprintf("%q", m.name))

	if m.value != nil {
		b.WriteString(" value: ")
		b.WriteString(m.value.Describe())
	}

	if len(m.labels) > 0 {
		b.WriteString(" and labels:\n")
		for _, pair := range m.labels {
			b.WriteString(pair.name.Describe())
			b.WriteString("=")
			b.WriteString(pair.value.Describe())
			b.WriteString("\n")
		}
	}

	return b.String()
}

// DescribeMismatch renders the most specific explanation the result's
// diagnostic state supports. The first applicable rule wins:
//
//  1. Values were found on fully label-matched samples but a value predicate
//     is set: show the predicate and the values actually seen.
//  2. Samples failed label matching: show each sample's actual labels and,
//     when asserting presence, which predicates went unmatched and why.
//  3. Nothing matched the name at all: list every observed family and sample
//     name as a hint toward typos.
func (m *Matcher) DescribeMismatch(result *Result) string {
	var b strings.Builder

	dashList := "\n" + indentation + bullet

	switch {
	case len(result.foundValues) > 0 && m.value != nil:
		if m.presence {
			b.WriteString("no")
		} else {
			b.WriteString("a")
		}
		b.WriteString(" value matches: ")
		b.WriteString(m.value.Describe())
		b.WriteString("\n" + indentation + "found values: ")
		for _, name := range sortedValueKeys(result.foundValues) {
			b.WriteString(dashList)
			b.WriteString(joinValues(result.foundValues[name]))
			b.WriteString(" for sample ")
			b.WriteString(fmt.Sprintf("%q", name))
		}
	case len(result.unmatched) > 0:
		b.WriteString("labels did")
		if m.presence {
			b.WriteString(" not")
		}
		b.WriteString(" match:")
		for _, record := range result.unmatched {
			b.WriteString("\n")
			b.WriteString(joinLabels(record.ActualLabelNames, record.ActualLabelValues))
			if !m.presence {
				continue
			}
			if len(record.MissingNames) > 0 {
				b.WriteString("\n  missing names: ")
				for i, name := range record.MissingNames {
					if i > 0 {
						b.WriteString(", ")
					}
					b.WriteString(name.Describe())
				}
			}
			if len(record.ValueMismatches) > 0 {
				b.WriteString("\n  unmatched label values:")
				for _, mismatch := range record.ValueMismatches {
					b.WriteString("\n  " + bullet + "for ")
					b.WriteString(mismatch.Name.Describe())
					b.WriteString(" expected: ")
					b.WriteString(mismatch.Expected.Describe())
					b.WriteString(" but got: ")
					b.WriteString(fmt.Sprintf("%q", mismatch.Actual))
				}
			}
			b.WriteString("\n")
		}
	default:
		if m.presence {
			b.WriteString("no metric with name: ")
			b.WriteString(fmt.Sprintf("%q", m.name))
			b.WriteString("\n" + indentation)
		}
		familyNames := result.FamilyNames()
		if len(familyNames) > 0 {
			b.WriteString("found metric names:")
			writeNameList(&b, dashList, familyNames)
		}
		sampleNames := result.SampleNames()
		if len(sampleNames) > 0 {
			if len(familyNames) > 0 {
				b.WriteString("\n" + indentation)
			}
			b.WriteString("found metric sample names:")
			writeNameList(&b, dashList, sampleNames)
		}
	}

	return b.String()
}

func writeNameList(b *strings.Builder, dashList string, names []string) {
	for _, name := range names {
		b.WriteString(dashList)
		b.WriteString(fmt.Sprintf("%q", name))
	}
}

func joinValues(values []float64) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, "<"+formatValue(v)+">")
	}

	return strings.Join(parts, ", ")
}

func joinLabels(names, values []string) string {
	parts := make([]string, 0, len(names))
	for i := range names {
		parts = append(parts, names[i]+"="+values[i])
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func sortedValueKeys(values map[string][]float64) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
