package reporting

import "context"

// Supported values of Config.Provider.
const (
	ProviderRollbar = "rollbar"
	ProviderSentry  = "sentry"
	ProviderNone    = "none"
)

// Config is the static reporting configuration. It is loaded once at
// startup and never mutated afterwards; every zero value means "off".
type Config struct {
	// EnableForProduction enables server-side reporting in Production contexts.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enableForProduction" key
	//   - Environment variable REPORTING_ENABLE_FOR_PRODUCTION
	EnableForProduction bool `yaml:"enableForProduction" envconfig:"REPORTING_ENABLE_FOR_PRODUCTION"`

	// EnableForDevelopment enables server-side reporting in Development contexts.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enableForDevelopment" key
	//   - Environment variable REPORTING_ENABLE_FOR_DEVELOPMENT
	EnableForDevelopment bool `yaml:"enableForDevelopment" envconfig:"REPORTING_ENABLE_FOR_DEVELOPMENT"`

	// EnableForFrontend enables the browser-side payload.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enableForFrontend" key
	//   - Environment variable REPORTING_ENABLE_FOR_FRONTEND
	EnableForFrontend bool `yaml:"enableForFrontend" envconfig:"REPORTING_ENABLE_FOR_FRONTEND"`

	// Provider selects the SDK adapter: "rollbar" (default), "sentry" or "none".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "provider" key
	//   - Environment variable REPORTING_PROVIDER
	Provider string `yaml:"provider" envconfig:"REPORTING_PROVIDER"`

	// ServerSettings is forwarded to the SDK on initialization, with "root",
	// "environment" and "person_fn" overridden. Keys are SDK specific, e.g.
	// "access_token" and "code_version" for Rollbar or "dsn" for Sentry.
	ServerSettings map[string]interface{} `yaml:"rollbarSettings" ignored:"true"`

	// ClientSettings is the template of the browser payload; only
	// "payload.environment" and "payload.person" are overridden.
	ClientSettings map[string]interface{} `yaml:"rollbarJsSettings" ignored:"true"`
}

// ProviderName returns the configured provider, defaulting to rollbar.
func (c Config) ProviderName() string {
	if c.Provider == "" {
		return ProviderRollbar
	}
	return c.Provider
}

// Logger is the logging surface used by this package.
type Logger interface {
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
