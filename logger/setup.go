package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerClient is a wrapper around Uber's Zap logger.
// It provides a simplified interface to the underlying Zap logger, with
// additional functionality specific to the assertion components.
//
// LoggerClient implements the Logger interface.
type LoggerClient struct {
	// Zap is the underlying zap.Logger instance.
	// Exposed to allow direct access to Zap-specific functionality when
	// needed, but most logging should go through the wrapper methods.
	Zap *zap.Logger

	// tracingEnabled indicates whether tracing integration is enabled.
	// When true, the *WithContext methods extract trace context and include
	// trace/span IDs in log entries.
	tracingEnabled bool
}

// NewLoggerClient initializes and returns a new logger based on configuration.
//
// The logger is configured with:
//   - JSON encoding for structured logging
//   - ISO8601 timestamp format
//   - Capital letter level encoding (e.g., "INFO", "ERROR") without color codes
//   - Process ID and service name as default fields
//   - Caller information (file and line) included in log entries
//   - Configurable caller skip depth for wrapper scenarios
//   - Output directed to stderr
//
// Example:
//
//	log, err := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "promassert",
//	})
func NewLoggerClient(cfg Config) (*LoggerClient, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel

	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(logLevel),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Sampling:          nil,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	// Default to 1 if not set, which works for direct usage of the logger
	callerSkip := cfg.CallerSkip
	if callerSkip <= 0 {
		callerSkip = 1
	}

	zapLogger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(callerSkip))
	if err != nil {
		return nil, fmt.Errorf("building zap logger: %w", err)
	}

	return &LoggerClient{
		Zap:            zapLogger,
		tracingEnabled: cfg.EnableTracing,
	}, nil
}

// FromZap wraps an existing zap.Logger. Intended for tests that observe log
// output and for applications that already carry a configured Zap instance.
func FromZap(zapLogger *zap.Logger, enableTracing bool) *LoggerClient {
	return &LoggerClient{
		Zap:            zapLogger,
		tracingEnabled: enableTracing,
	}
}
