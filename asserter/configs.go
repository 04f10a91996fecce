package asserter

// Config defines the configuration structure for the asserter.
type Config struct {
	// ServiceName identifies the checking service in log entries.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "service_name" key
	//   - Environment variable ASSERTER_SERVICE_NAME
	ServiceName string `yaml:"service_name" envconfig:"ASSERTER_SERVICE_NAME"`

	// FailFast stops a Check run at the first failed matcher instead of
	// evaluating the remaining matchers and aggregating their failures.
	// Leave unset to see every failure of a run in one error.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "fail_fast" key
	//   - Environment variable ASSERTER_FAIL_FAST
	FailFast bool `yaml:"fail_fast" envconfig:"ASSERTER_FAIL_FAST"`
}
