package sample_test

import (
	"math"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/promassert/sample"
)

// newFixtureRegistry builds a registry holding a histogram family "count" and
// a gauge family "peanuts", the canonical fixture shapes for matcher tests.
func newFixtureRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()

	registry := prometheus.NewRegistry()

	count := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "count",
		Help:    "well I count",
		Buckets: []float64{1, 5},
	}, []string{"label_one", "another_label"})
	registry.MustRegister(count)
	count.WithLabelValues("value_one", "4").Observe(3)
	count.WithLabelValues("value_two", "value22").Observe(-3.4)

	peanuts := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "peanuts",
		Help: "peanuts plus peanuts still amount to peanuts",
	}, []string{"label_one", "another_label"})
	registry.MustRegister(peanuts)
	peanuts.WithLabelValues("value_three", "4").Sub(3)
	peanuts.WithLabelValues("value_four", "value22").Add(3.4)

	return registry
}

func TestFromSourceRegistry(t *testing.T) {
	t.Parallel()
	groups, err := sample.FromSource(newFixtureRegistry(t))
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// Gather returns families sorted by name.
	assert.Equal(t, "count", groups[0].Name)
	assert.Equal(t, "peanuts", groups[1].Name)

	// Two histogram series, each flattened into 3 buckets + _count + _sum.
	count := groups[0]
	require.Len(t, count.Samples, 10)

	names := make([]string, 0, len(count.Samples))
	for _, s := range count.Samples {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"count_bucket", "count_bucket", "count_bucket", "count_count", "count_sum",
		"count_bucket", "count_bucket", "count_bucket", "count_count", "count_sum",
	}, names)

	// dto label pairs come back sorted by label name; the bucket label is
	// appended after them.
	first := count.Samples[0]
	assert.Equal(t, []string{"another_label", "label_one", "le"}, first.LabelNames)
	assert.Equal(t, []string{"4", "value_one", "1"}, first.LabelValues)
	assert.Equal(t, float64(0), first.Value)

	sum := count.Samples[4]
	assert.Equal(t, "count_sum", sum.Name)
	assert.Equal(t, []string{"another_label", "label_one"}, sum.LabelNames)
	assert.Equal(t, []string{"4", "value_one"}, sum.LabelValues)
	assert.Equal(t, 3.0, sum.Value)

	// The +Inf bucket uses the exposition spelling.
	infinity := count.Samples[2]
	assert.Equal(t, "+Inf", infinity.LabelValues[2])
	assert.Equal(t, float64(1), infinity.Value)
}

func TestFromSourceCollector(t *testing.T) {
	t.Parallel()
	peanuts := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "peanuts",
		Help: "peanuts plus peanuts still amount to peanuts",
	}, []string{"label_one", "another_label"})
	peanuts.WithLabelValues("value_three", "4").Sub(3)
	peanuts.WithLabelValues("value_four", "value22").Add(3.4)

	groups, err := sample.FromSource(peanuts)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	group := groups[0]
	assert.Equal(t, "peanuts", group.Name)
	require.Len(t, group.Samples, 2)

	assert.Equal(t, "peanuts", group.Samples[0].Name)
	assert.Equal(t, []string{"4", "value_three"}, group.Samples[0].LabelValues)
	assert.Equal(t, -3.0, group.Samples[0].Value)
	assert.Equal(t, 3.4, group.Samples[1].Value)
}

func TestFromSourceSummary(t *testing.T) {
	t.Parallel()
	latency := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name:       "latency",
		Help:       "request latency",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01},
	}, []string{"label_one"})
	latency.WithLabelValues("value_one").Observe(2)
	latency.WithLabelValues("value_one").Observe(4)

	groups, err := sample.FromSource(latency)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	group := groups[0]
	assert.Equal(t, "latency", group.Name)

	// One quantile sample per objective (ascending), then _count and _sum.
	require.Len(t, group.Samples, 4)

	names := make([]string, 0, len(group.Samples))
	for _, s := range group.Samples {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"latency", "latency", "latency_count", "latency_sum"}, names)

	median := group.Samples[0]
	assert.Equal(t, []string{"label_one", "quantile"}, median.LabelNames)
	assert.Equal(t, []string{"value_one", "0.5"}, median.LabelValues)
	assert.Equal(t, "0.9", group.Samples[1].LabelValues[1])

	count := group.Samples[2]
	assert.Equal(t, []string{"label_one"}, count.LabelNames)
	assert.Equal(t, float64(2), count.Value)
	assert.Equal(t, 6.0, group.Samples[3].Value)
}

func TestFromSourceUntyped(t *testing.T) {
	t.Parallel()
	mode := prometheus.NewUntypedFunc(prometheus.UntypedOpts{
		Name: "queue_mode",
		Help: "opaque queue mode flag",
	}, func() float64 { return 7 })

	groups, err := sample.FromSource(mode)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	group := groups[0]
	assert.Equal(t, "queue_mode", group.Name)
	require.Len(t, group.Samples, 1)
	assert.Equal(t, "queue_mode", group.Samples[0].Name)
	assert.Empty(t, group.Samples[0].LabelNames)
	assert.Equal(t, 7.0, group.Samples[0].Value)
}

// Family types without a dedicated flattening (gauge histograms) degrade to a
// single untyped-valued sample named after the family.
func TestFromSourceUnmodeledFamilyType(t *testing.T) {
	t.Parallel()
	name := "boundaries"
	families := []*dto.MetricFamily{{
		Name:   &name,
		Type:   dto.MetricType_GAUGE_HISTOGRAM.Enum(),
		Metric: []*dto.Metric{{Histogram: &dto.Histogram{}}},
	}}

	groups, err := sample.FromSource(prometheus.GathererFunc(func() ([]*dto.MetricFamily, error) {
		return families, nil
	}))
	require.NoError(t, err)
	require.Len(t, groups, 1)

	group := groups[0]
	assert.Equal(t, "boundaries", group.Name)
	require.Len(t, group.Samples, 1)
	assert.Equal(t, "boundaries", group.Samples[0].Name)
	assert.Equal(t, float64(0), group.Samples[0].Value)
}

func TestFromSourceUnsupportedShape(t *testing.T) {
	t.Parallel()
	groups, err := sample.FromSource(42)
	require.ErrorIs(t, err, sample.ErrUnsupportedSource)
	assert.Contains(t, err.Error(), "int")
	assert.Nil(t, groups)

	_, err = sample.FromSource(nil)
	require.ErrorIs(t, err, sample.ErrUnsupportedSource)
}

func TestFromSourceEmptyRegistry(t *testing.T) {
	t.Parallel()
	groups, err := sample.FromSource(prometheus.NewRegistry())
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestFromText(t *testing.T) {
	t.Parallel()
	payload := `
# HELP peanuts peanuts plus peanuts still amount to peanuts
# TYPE peanuts gauge
peanuts{label_one="value_three",another_label="4"} -3
# HELP count well I count
# TYPE count histogram
count_bucket{label_one="value_one",another_label="4",le="1"} 0
count_bucket{label_one="value_one",another_label="4",le="+Inf"} 1
count_sum{label_one="value_one",another_label="4"} 3
count_count{label_one="value_one",another_label="4"} 1
`

	groups, err := sample.FromText(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// Sorted by family name regardless of input order.
	assert.Equal(t, "count", groups[0].Name)
	assert.Equal(t, "peanuts", groups[1].Name)

	count := groups[0]
	require.Len(t, count.Samples, 4)
	assert.Equal(t, "count_bucket", count.Samples[0].Name)
	assert.Equal(t, "count_count", count.Samples[2].Name)
	assert.Equal(t, "count_sum", count.Samples[3].Name)
	assert.Equal(t, 3.0, count.Samples[3].Value)

	infinity := count.Samples[1]
	require.Equal(t, "le", infinity.LabelNames[len(infinity.LabelNames)-1])
	assert.Equal(t, "+Inf", infinity.LabelValues[len(infinity.LabelValues)-1])
	assert.True(t, math.Abs(infinity.Value-1) < 1e-9)

	assert.Equal(t, -3.0, groups[1].Samples[0].Value)
}

func TestFromTextMalformed(t *testing.T) {
	t.Parallel()
	_, err := sample.FromText(strings.NewReader(`count{label_one=} 3`))
	require.ErrorIs(t, err, sample.ErrGatherFailed)
}
