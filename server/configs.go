package server

// DefaultAddress is where the HTTP host listens unless configured.
const DefaultAddress = ":8080"

// Config defines the HTTP host.
type Config struct {
	// Address is the listen address, e.g. ":8080" or "127.0.0.1:0".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "address" key
	//   - Environment variable HTTP_ADDRESS
	Address string `yaml:"address" envconfig:"HTTP_ADDRESS"`
}
