package asserter

import (
	"go.uber.org/fx"
)

// FXModule defines the Fx module for the asserter package.
//
// The module provides:
//  1. *Asserter (concrete type) for direct use
//  2. Checker interface for dependency injection
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    asserter.FXModule,
//	    fx.Provide(
//	        func() asserter.Config { return asserter.Config{ServiceName: "worker"} },
//	        func() prometheus.Gatherer { return prometheus.DefaultGatherer },
//	    ),
//	)
//
// Dependencies required by this module:
//   - An asserter.Config instance must be available in the dependency injection container
//   - A prometheus.Gatherer instance must be available in the dependency injection container
//   - A logger.Logger instance (for example from logger.FXModule)
var FXModule = fx.Module("asserter",
	fx.Provide(
		NewAsserter, // Provides *Asserter
		// Also provide the Checker interface
		fx.Annotate(
			func(a *Asserter) Checker { return a },
			fx.As(new(Checker)),
		),
	),
)
