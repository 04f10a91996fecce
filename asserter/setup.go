package asserter

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/aalemi-dev/promassert/logger"
	"github.com/aalemi-dev/promassert/matcher"
	"github.com/aalemi-dev/promassert/sample"
)

// Asserter runs metric assertions against a prometheus.Gatherer.
//
// Asserter implements the Checker interface.
type Asserter struct {
	gatherer prometheus.Gatherer
	log      logger.Logger
	cfg      Config
}

// NewAsserter initializes and returns a new asserter bound to the given
// gatherer and logger.
//
// Example:
//
//	check := asserter.NewAsserter(asserter.Config{ServiceName: "worker"},
//	    prometheus.DefaultGatherer, log)
func NewAsserter(cfg Config, gatherer prometheus.Gatherer, log logger.Logger) *Asserter {
	return &Asserter{
		gatherer: gatherer,
		log:      log,
		cfg:      cfg,
	}
}

// Check evaluates each matcher against a single snapshot of the gatherer's
// state, so all matchers of a run see the same metric values.
//
// Every failed matcher is logged with its expectation and mismatch detail and
// contributes an ErrAssertionFailed-wrapped error. Failures are aggregated
// across the run unless FailFast is set, in which case the first failure is
// returned immediately.
func (a *Asserter) Check(ctx context.Context, matchers ...*matcher.Matcher) error {
	families, err := sample.FromSource(a.gatherer)
	if err != nil {
		a.log.ErrorWithContext(ctx, "gathering metric state failed", err, nil)
		return err
	}

	var errs error

	for _, m := range matchers {
		result, err := m.Evaluate(families)
		if err != nil {
			a.log.ErrorWithContext(ctx, "matcher could not be evaluated", err, nil)
			errs = multierr.Append(errs, err)
			if a.cfg.FailFast {
				return errs
			}

			continue
		}

		if result.Matched() {
			a.log.DebugWithContext(ctx, "metric assertion passed", nil, map[string]interface{}{
				"expected": m.Describe(),
				"service":  a.cfg.ServiceName,
			})

			continue
		}

		a.log.ErrorWithContext(ctx, "metric assertion failed", nil, map[string]interface{}{
			"expected": m.Describe(),
			"but":      m.DescribeMismatch(result),
			"service":  a.cfg.ServiceName,
		})

		errs = multierr.Append(errs,
			fmt.Errorf("%w: expected %s", ErrAssertionFailed, m.Describe()))
		if a.cfg.FailFast {
			return errs
		}
	}

	return errs
}
