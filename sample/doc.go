// Package sample normalizes Prometheus metric sources into a flat, read-only
// view of family groups and samples that the match engine can scan.
//
// Two source shapes are supported, mirroring the two ways instrumented code
// exposes its metrics:
//
//  1. Registry-shaped: anything implementing prometheus.Gatherer
//     (*prometheus.Registry being the usual case). The gathered families are
//     flattened in enumeration order.
//  2. Collector-shaped: anything implementing prometheus.Collector (a single
//     counter vec, a custom collector, ...). The collector is drained through
//     a dedicated pedantic registry and its output flattened the same way.
//
// Any other shape is rejected with ErrUnsupportedSource; there is no sensible
// partial result for an object that cannot produce metric families.
//
// # Flattening
//
// A metric family produces one sample per simple metric (counter, gauge,
// untyped), and several derived samples per distribution metric:
//
//	histogram "count" → count_bucket{le="..."} ..., count_count, count_sum
//	summary "lat"     → lat{quantile="..."} ..., lat_count, lat_sum
//
// Derived sample names carry the family name as a prefix, which is what makes
// prefix-based name resolution in the match engine work for both family names
// and concrete sample names.
//
// # Fixtures from text
//
// FromText parses the Prometheus text exposition format, so test fixtures can
// be written as literal scrape payloads:
//
//	groups, err := sample.FromText(strings.NewReader(`
//	# TYPE count counter
//	count{label_one="value_one"} 3
//	`))
//
// The package performs no I/O of its own and never mutates the source.
package sample
