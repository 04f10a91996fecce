package sample

import (
	dto "github.com/prometheus/client_model/go"
)

// Well-known derived sample suffixes and labels for distribution metrics.
const (
	bucketSuffix  = "_bucket"
	sumSuffix     = "_sum"
	countSuffix   = "_count"
	bucketLabel   = "le"
	quantileLabel = "quantile"
)

// fromFamilies flattens dto metric families into family groups, preserving
// family order.
func fromFamilies(families []*dto.MetricFamily) []FamilyGroup {
	groups := make([]FamilyGroup, 0, len(families))
	for _, family := range families {
		groups = append(groups, fromFamily(family))
	}

	return groups
}

// fromFamily flattens one dto family. Counters, gauges and untyped metrics
// yield one sample named after the family. Histograms yield one _bucket
// sample per bound (with an "le" label) plus _count and _sum. Summaries
// yield one sample per quantile (with a "quantile" label) plus _count and
// _sum.
//
// Family types without a dedicated flattening (gauge histograms) take the
// untyped path: one sample named after the family, carrying the metric's
// untyped value, which is zero when that field is unset.
func fromFamily(family *dto.MetricFamily) FamilyGroup {
	name := family.GetName()
	group := FamilyGroup{Name: name}

	for _, metric := range family.GetMetric() {
		names, values := labelPairs(metric)

		switch family.GetType() {
		case dto.MetricType_COUNTER:
			group.Samples = append(group.Samples, Sample{
				Name:        name,
				LabelNames:  names,
				LabelValues: values,
				Value:       metric.GetCounter().GetValue(),
			})
		case dto.MetricType_GAUGE:
			group.Samples = append(group.Samples, Sample{
				Name:        name,
				LabelNames:  names,
				LabelValues: values,
				Value:       metric.GetGauge().GetValue(),
			})
		case dto.MetricType_HISTOGRAM:
			histogram := metric.GetHistogram()
			for _, bucket := range histogram.GetBucket() {
				group.Samples = append(group.Samples, Sample{
					Name:        name + bucketSuffix,
					LabelNames:  appendLabel(names, bucketLabel),
					LabelValues: appendLabel(values, formatLabelValue(bucket.GetUpperBound())),
					Value:       float64(bucket.GetCumulativeCount()),
				})
			}
			group.Samples = append(group.Samples,
				Sample{
					Name:        name + countSuffix,
					LabelNames:  names,
					LabelValues: values,
					Value:       float64(histogram.GetSampleCount()),
				},
				Sample{
					Name:        name + sumSuffix,
					LabelNames:  names,
					LabelValues: values,
					Value:       histogram.GetSampleSum(),
				},
			)
		case dto.MetricType_SUMMARY:
			summary := metric.GetSummary()
			for _, quantile := range summary.GetQuantile() {
				group.Samples = append(group.Samples, Sample{
					Name:        name,
					LabelNames:  appendLabel(names, quantileLabel),
					LabelValues: appendLabel(values, formatLabelValue(quantile.GetQuantile())),
					Value:       quantile.GetValue(),
				})
			}
			group.Samples = append(group.Samples,
				Sample{
					Name:        name + countSuffix,
					LabelNames:  names,
					LabelValues: values,
					Value:       float64(summary.GetSampleCount()),
				},
				Sample{
					Name:        name + sumSuffix,
					LabelNames:  names,
					LabelValues: values,
					Value:       summary.GetSampleSum(),
				},
			)
		default:
			group.Samples = append(group.Samples, Sample{
				Name:        name,
				LabelNames:  names,
				LabelValues: values,
				Value:       metric.GetUntyped().GetValue(),
			})
		}
	}

	return group
}

// labelPairs extracts a metric's label pairs into positionally paired slices,
// preserving the order the source reported them in.
func labelPairs(metric *dto.Metric) ([]string, []string) {
	pairs := metric.GetLabel()
	if len(pairs) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(pairs))
	values := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		names = append(names, pair.GetName())
		values = append(values, pair.GetValue())
	}

	return names, values
}

// appendLabel copies the base slice before appending so that samples sharing
// a metric's label pairs never alias each other's backing arrays.
func appendLabel(base []string, extra string) []string {
	extended := make([]string, 0, len(base)+1)
	extended = append(extended, base...)

	return append(extended, extra)
}
