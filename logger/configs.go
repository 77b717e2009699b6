package logger

// Log level names accepted in Config.Level.
const (
	// Debug emits every entry, including identity-resolution diagnostics.
	Debug = "debug"

	// Info emits Info, Warning and Error entries.
	Info = "info"

	// Warning emits Warning and Error entries.
	Warning = "warning"

	// Error emits only Error entries.
	Error = "error"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Level determines the minimum log level that will be output.
	// Valid values are "debug", "info", "warning" and "error".
	// Unknown or empty values fall back to "info".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "level" key
	//   - Environment variable LOGGER_LEVEL
	Level string `yaml:"level" envconfig:"LOGGER_LEVEL"`

	// EnableTracing adds "trace_id" and "span_id" to entries logged through
	// the ...WithContext methods whenever ctx carries a recording span.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enable_tracing" key
	//   - Environment variable LOGGER_ENABLE_TRACING
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING"`

	// ServiceName populates the "service" field of every entry.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// Environment populates the "environment" field of every entry.
	// The composition root fills it from the detected application context
	// when it is left empty.
	Environment string `yaml:"environment" envconfig:"LOGGER_ENVIRONMENT"`

	// CallerSkip controls the number of stack frames to skip when reporting the caller.
	//   - 1 (default): callers use the logger directly
	//   - 2: callers go through one extra wrapper layer
	//
	// If not set or set to 0, defaults to 1.
	CallerSkip int `yaml:"caller_skip" envconfig:"LOGGER_CALLER_SKIP"`
}
