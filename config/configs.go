package config

import (
	"github.com/aalemi-dev/errgate/environment"
	"github.com/aalemi-dev/errgate/frontend"
	"github.com/aalemi-dev/errgate/logger"
	"github.com/aalemi-dev/errgate/metrics"
	"github.com/aalemi-dev/errgate/reporting"
	"github.com/aalemi-dev/errgate/security"
	"github.com/aalemi-dev/errgate/server"
	"github.com/aalemi-dev/errgate/tracer"
)

// DefaultServiceName is used by logger, metrics and tracer when the file
// names no service.
const DefaultServiceName = "errgate"

// AppConfig is the whole application configuration, one section per package.
//
//	environment:
//	  context: Production/Live
//	reporting:
//	  enableForProduction: true
//	  rollbarSettings:
//	    access_token: "..."
//	  rollbarJsSettings:
//	    accessToken: "..."
//	    captureUncaught: true
type AppConfig struct {
	Server      server.Config      `yaml:"server"`
	Logger      logger.Config      `yaml:"logger"`
	Metrics     metrics.Config     `yaml:"metrics"`
	Tracer      tracer.Config      `yaml:"tracer"`
	Environment environment.Config `yaml:"environment"`
	Security    security.Config    `yaml:"security"`
	Reporting   reporting.Config   `yaml:"reporting"`
	Frontend    frontend.Config    `yaml:"frontend"`
}

// Default returns the configuration used for anything a file and the
// environment leave unset. Reporting is off by default.
func Default() *AppConfig {
	return &AppConfig{
		Server: server.Config{Address: server.DefaultAddress},
		Logger: logger.Config{
			Level:         logger.Info,
			EnableTracing: true,
			ServiceName:   DefaultServiceName,
		},
		Metrics: metrics.Config{ServiceName: DefaultServiceName},
		Tracer:  tracer.Config{ServiceName: DefaultServiceName},
		Frontend: frontend.Config{
			ConfigVariable: frontend.DefaultConfigVariable,
		},
	}
}

// sections lists every section for environment overrides.
func (c *AppConfig) sections() []interface{} {
	return []interface{}{
		&c.Server,
		&c.Logger,
		&c.Metrics,
		&c.Tracer,
		&c.Environment,
		&c.Security,
		&c.Reporting,
		&c.Frontend,
	}
}
