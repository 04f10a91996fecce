package logger

// Log level constants that define the available logging levels.
// These string constants are used in configuration to set the desired log level.
const (
	// Debug represents the most verbose logging level, intended for development
	// and troubleshooting. At Debug level every message is output.
	Debug = "debug"

	// Info represents the standard logging level for general operational
	// information. At Info level, Debug messages are suppressed.
	Info = "info"

	// Warning represents the logging level for potential issues that aren't
	// errors. At Warning level, only Warning and Error messages are output.
	Warning = "warning"

	// Error represents the logging level for error conditions. At Error level,
	// only Error messages are output.
	Error = "error"
)

// Config defines the configuration structure for the logger.
// It contains settings that control the behavior of the logging system.
type Config struct {
	// Level determines the minimum log level that will be output.
	// Valid values are "debug", "info", "warning" and "error"; unknown values
	// fall back to "info".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "level" key
	//   - Environment variable ZAP_LOGGER_LEVEL
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// EnableTracing controls whether tracing integration is enabled for
	// logging operations. When set to true, the logger will automatically
	// extract trace and span information from context and include it in log
	// entries as "trace_id" and "span_id" fields, correlating assertion logs
	// with distributed traces of the code under test.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enable_tracing" key
	//   - Environment variable LOGGER_ENABLE_TRACING
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING"`

	// ServiceName is the name of the service that is logging messages.
	// This value is used to populate the "service" field in log entries.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// CallerSkip controls the number of stack frames to skip when reporting
	// the caller. Useful when wrapper layers sit between the call site and
	// this logger.
	//
	//   - 1 (default): calling the logger directly
	//   - 2: one additional wrapper layer
	//
	// If not set or set to 0, defaults to 1.
	CallerSkip int `yaml:"caller_skip" envconfig:"LOGGER_CALLER_SKIP"`
}
