package asserter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aalemi-dev/promassert/asserter"
	"github.com/aalemi-dev/promassert/logger"
	"github.com/aalemi-dev/promassert/matcher"
	"github.com/aalemi-dev/promassert/sample"
)

func newObservedLogger(level zapcore.Level) (logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return logger.FromZap(zap.New(core), false), logs
}

func newFixtureRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()

	registry := prometheus.NewRegistry()

	jobs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jobs_processed_total",
		Help: "processed jobs by outcome",
	}, []string{"outcome"})
	registry.MustRegister(jobs)
	jobs.WithLabelValues("ok").Add(5)
	jobs.WithLabelValues("failed").Inc()

	queue := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "queue_depth",
		Help: "jobs waiting",
	})
	registry.MustRegister(queue)
	queue.Set(3)

	return registry
}

func TestCheck_AllMatchersPass(t *testing.T) {
	t.Parallel()
	log, logs := newObservedLogger(zapcore.DebugLevel)
	check := asserter.NewAsserter(asserter.Config{ServiceName: "test"},
		newFixtureRegistry(t), log)

	err := check.Check(context.Background(),
		matcher.HasMetric("jobs_processed_total").Label("outcome", "ok").IntValue(matcher.Ptr(5)),
		matcher.HasMetric("queue_depth").ValueNear(matcher.Ptr(3.0), 0.1),
		matcher.DoesNotHaveMetric("jobs_dropped_total"),
	)
	require.NoError(t, err)

	// One debug entry per passing matcher, no errors logged.
	assert.Equal(t, 3, logs.FilterMessage("metric assertion passed").Len())
	assert.Equal(t, 0, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestCheck_FailuresAggregated(t *testing.T) {
	t.Parallel()
	log, logs := newObservedLogger(zapcore.InfoLevel)
	check := asserter.NewAsserter(asserter.Config{ServiceName: "test"},
		newFixtureRegistry(t), log)

	err := check.Check(context.Background(),
		matcher.HasMetric("jobs_processed_total").Label("outcome", "ok"),
		matcher.HasMetric("missing_metric"),
		matcher.HasMetric("queue_depth").ValueNear(matcher.Ptr(100.0), 0.1),
	)
	require.Error(t, err)
	require.ErrorIs(t, err, asserter.ErrAssertionFailed)

	// Both failures are present, not just the first.
	assert.Len(t, multierr.Errors(err), 2)
	assert.Equal(t, 2, logs.FilterMessage("metric assertion failed").Len())

	entry := logs.FilterMessage("metric assertion failed").All()[0]
	fields := entry.ContextMap()
	assert.Contains(t, fields["expected"], `"missing_metric"`)
	assert.Contains(t, fields["but"], "no metric with name")
	assert.Equal(t, "test", fields["service"])
}

func TestCheck_FailFastStopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	log, logs := newObservedLogger(zapcore.InfoLevel)
	check := asserter.NewAsserter(asserter.Config{ServiceName: "test", FailFast: true},
		newFixtureRegistry(t), log)

	err := check.Check(context.Background(),
		matcher.HasMetric("missing_metric"),
		matcher.HasMetric("another_missing_metric"),
	)
	require.ErrorIs(t, err, asserter.ErrAssertionFailed)

	assert.Len(t, multierr.Errors(err), 1)
	assert.Equal(t, 1, logs.FilterMessage("metric assertion failed").Len())
}

func TestCheck_InvalidMatcherReported(t *testing.T) {
	t.Parallel()
	log, _ := newObservedLogger(zapcore.InfoLevel)
	check := asserter.NewAsserter(asserter.Config{}, newFixtureRegistry(t), log)

	err := check.Check(context.Background(), matcher.HasMetric("   "))
	require.ErrorIs(t, err, matcher.ErrInvalidSpec)
}

func TestCheck_GatherFailureAborts(t *testing.T) {
	t.Parallel()
	log, logs := newObservedLogger(zapcore.InfoLevel)
	check := asserter.NewAsserter(asserter.Config{}, failingGatherer{}, log)

	err := check.Check(context.Background(), matcher.HasMetric("queue_depth"))
	require.ErrorIs(t, err, sample.ErrGatherFailed)
	assert.Equal(t, 1, logs.FilterMessage("gathering metric state failed").Len())
}

func TestCheck_NoMatchersIsNoop(t *testing.T) {
	t.Parallel()
	log, _ := newObservedLogger(zapcore.InfoLevel)
	check := asserter.NewAsserter(asserter.Config{}, newFixtureRegistry(t), log)

	require.NoError(t, check.Check(context.Background()))
}

type failingGatherer struct{}

func (failingGatherer) Gather() ([]*dto.MetricFamily, error) {
	return nil, errors.New("scrape broke")
}
