// Package matcher decides whether a metric source contains (or, in negated
// mode, does not contain) a sample matching a requested name, label
// predicates, and value predicate, and explains precisely why when it does
// not.
//
// # Building a matcher
//
// Matchers are built fluently, starting from one of four entry points:
//
//	matcher.HasMetric("count")            // registry contains the metric
//	matcher.DoesNotHaveMetric("count")    // registry does not contain it
//	matcher.CollectsMetric("count")       // collector collects the metric
//	matcher.DoesNotCollectMetric("count") // collector does not collect it
//
// and narrowed with chained calls:
//
//	m := matcher.HasMetric("count").
//		Label("label_one", "value_one").
//		Label("another_label", "4").
//		ValueNear(matcher.Ptr(3.0), 0.1)
//
//	result, err := m.Match(registry)
//	if err != nil { ... }
//	if !result.Matched() {
//		fmt.Println(m.DescribeMismatch(result))
//	}
//
// # Name resolution
//
// The requested name may be a family name or a derived sample name. A family
// is considered when its name is a prefix of the requested name; a sample is
// considered when the requested name is a prefix of the sample name. Asking
// for "count" therefore reaches count_bucket, count_count and count_sum, and
// asking for "count_sum" reaches exactly that sample of the "count" family.
//
// # Diagnostics
//
// Every evaluation produces a fresh Result holding the diagnostic state
// accumulated during the scan: values found on label-matching samples, label
// records for samples that failed a predicate, and every family and sample
// name observed. DescribeMismatch renders the most specific explanation the
// state supports: value mismatches first, then label mismatches, then the
// full list of observed names as a typo hint.
//
// # Concurrency
//
// Evaluation is synchronous and side-effect free with respect to the source.
// Callers must supply a stable snapshot; the engine performs no
// synchronization against a concurrently mutating registry.
package matcher
