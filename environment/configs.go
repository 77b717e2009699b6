package environment

// Config defines how the application context and root path are detected.
type Config struct {
	// Context is the application context name, e.g. "Production",
	// "Development/Docker" or "Testing". Root names are matched
	// case-insensitively; an empty value means "Development".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "context" key
	//   - Environment variable APP_CONTEXT
	Context string `yaml:"context" envconfig:"APP_CONTEXT"`

	// RootPath is the application root directory reported to the error
	// tracker as "root". When empty, the process working directory is used.
	// Relative paths are resolved against the working directory.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "root_path" key
	//   - Environment variable APP_ROOT
	RootPath string `yaml:"root_path" envconfig:"APP_ROOT"`
}
