// Package logger provides structured logging for the metric assertion
// components.
//
// The package wraps Uber's Zap logger with a simplified API: log levels,
// structured key-value fields, and optional OpenTelemetry trace correlation.
// It integrates with the fx dependency injection framework for applications
// that run assertions as part of a larger harness.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: defines the contract for logging operations
//   - LoggerClient struct: concrete implementation of the Logger interface
//   - NewLoggerClient constructor: returns *LoggerClient (concrete type)
//   - FXModule: provides both *LoggerClient and Logger interface for
//     dependency injection
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create a logger directly:
//
//	log, err := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "promassert",
//	})
//	if err != nil {
//		return err
//	}
//
//	log.Info("assertion suite starting", nil, map[string]interface{}{
//		"matchers": 4,
//	})
//
// # FX Module Integration
//
// For applications using Uber's fx, use the FXModule which provides both the
// concrete type and interface. A logger.Config must be supplied to the
// dependency injection container:
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config {
//			return logger.Config{Level: logger.Info, ServiceName: "promassert"}
//		}),
//	)
//
// # Tracing Integration
//
// When EnableTracing is set, the *WithContext methods extract the active
// span's trace and span IDs from the context and attach them as "trace_id"
// and "span_id" fields, correlating assertion logs with distributed traces.
//
// # Thread Safety
//
// All methods on the Logger interface are safe for concurrent use by multiple
// goroutines.
package logger
