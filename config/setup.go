package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/aalemi-dev/errgate/environment"
)

// Load builds the configuration from Default, the YAML file at path (if
// path is not empty) and finally environment variables. An unknown
// application context is an error.
//
// YAML keys are kept verbatim, so the camelCase keys of the browser
// payload survive. Only scalar fields have environment overrides.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrParseConfig, path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := deriveEnvironment(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// deriveEnvironment labels logs and traces with the application context
// unless they name their own environment.
func deriveEnvironment(cfg *AppConfig) error {
	appContext, err := environment.ParseContext(cfg.Environment.Context)
	if err != nil {
		return err
	}
	name := strings.ToLower(appContext.String())
	if cfg.Logger.Environment == "" {
		cfg.Logger.Environment = name
	}
	if cfg.Tracer.AppEnv == "" {
		cfg.Tracer.AppEnv = name
	}
	return nil
}

func decode(data []byte, cfg *AppConfig) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *AppConfig) error {
	for _, section := range cfg.sections() {
		if err := envconfig.Process("", section); err != nil {
			return fmt.Errorf("%w: %w", ErrEnvOverride, err)
		}
	}
	return nil
}
