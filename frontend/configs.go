package frontend

// DefaultConfigVariable is the global the browser SDK snippet reads its
// configuration from.
const DefaultConfigVariable = "_rollbarConfig"

// Config controls how the client settings are exposed to the browser.
type Config struct {
	// ConfigVariable is the JavaScript global assigned by Snippet.
	ConfigVariable string `yaml:"configVariable" envconfig:"FRONTEND_CONFIG_VARIABLE"`

	// ScriptURL, when set, adds a script tag loading the browser SDK.
	ScriptURL string `yaml:"scriptUrl" envconfig:"FRONTEND_SCRIPT_URL"`
}

func (c Config) variable() string {
	if c.ConfigVariable == "" {
		return DefaultConfigVariable
	}
	return c.ConfigVariable
}
