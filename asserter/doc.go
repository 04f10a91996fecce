// Package asserter provides a runtime front end for metric assertions.
//
// While the matcher package targets test code, the asserter runs the same
// matchers against a live prometheus.Gatherer from application code: health
// probes, smoke checks after deployment, or harnesses that verify a component
// emitted the metrics it was supposed to. Failures are logged through the
// logger package and reported as errors instead of test failures.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Checker interface: defines the contract for running assertions
//   - Asserter struct: concrete implementation bound to a gatherer and logger
//   - NewAsserter constructor: returns *Asserter (concrete type)
//   - FXModule: provides both *Asserter and Checker for dependency injection
//
// # Direct Usage (Without FX)
//
//	check := asserter.NewAsserter(asserter.Config{ServiceName: "worker"},
//		prometheus.DefaultGatherer, log)
//
//	err := check.Check(ctx,
//		matcher.HasMetric("jobs_processed_total").Label("outcome", "ok"),
//		matcher.DoesNotHaveMetric("jobs_failed_total"),
//	)
//	if err != nil {
//		// errors.Is(err, asserter.ErrAssertionFailed)
//	}
//
// By default every matcher is evaluated and the failures are aggregated into
// a single error; with FailFast set, Check returns on the first failure.
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		asserter.FXModule,
//		fx.Provide(
//			func() asserter.Config { return asserter.Config{ServiceName: "worker"} },
//			func() prometheus.Gatherer { return prometheus.DefaultGatherer },
//		),
//	)
//
// # Thread Safety
//
// An Asserter is safe for concurrent use; each Check gathers its own snapshot
// of the metric state.
package asserter
