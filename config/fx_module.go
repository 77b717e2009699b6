package config

import (
	"go.uber.org/fx"
)

// FXModule supplies every section of cfg to the container.
//
//	cfg, err := config.Load(path)
//	app := fx.New(config.FXModule(cfg), logger.FXModule, ...)
func FXModule(cfg *AppConfig) fx.Option {
	return fx.Module("config",
		fx.Supply(
			cfg.Server,
			cfg.Logger,
			cfg.Metrics,
			cfg.Tracer,
			cfg.Environment,
			cfg.Security,
			cfg.Reporting,
			cfg.Frontend,
		),
	)
}
