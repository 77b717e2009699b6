package config

import "errors"

var (
	// ErrReadConfig is returned when the configuration file cannot be read.
	ErrReadConfig = errors.New("config: cannot read file")

	// ErrParseConfig is returned when the file is not valid YAML for AppConfig.
	ErrParseConfig = errors.New("config: cannot parse file")

	// ErrEnvOverride is returned when an environment variable holds a value
	// that does not fit its field.
	ErrEnvOverride = errors.New("config: invalid environment override")
)
