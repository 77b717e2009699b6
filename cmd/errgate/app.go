package main

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/aalemi-dev/errgate/config"
	"github.com/aalemi-dev/errgate/environment"
	"github.com/aalemi-dev/errgate/frontend"
	"github.com/aalemi-dev/errgate/logger"
	"github.com/aalemi-dev/errgate/metrics"
	"github.com/aalemi-dev/errgate/reporting"
	"github.com/aalemi-dev/errgate/reporting/rollbar"
	"github.com/aalemi-dev/errgate/reporting/sentry"
	"github.com/aalemi-dev/errgate/security"
	"github.com/aalemi-dev/errgate/server"
	"github.com/aalemi-dev/errgate/tracer"
)

// loggerAdapters exposes the shared *logger.LoggerClient under every
// package-local Logger interface.
var loggerAdapters = fx.Provide(
	func(l *logger.LoggerClient) security.Logger { return l },
	func(l *logger.LoggerClient) reporting.Logger { return l },
	func(l *logger.LoggerClient) rollbar.Logger { return l },
	func(l *logger.LoggerClient) sentry.Logger { return l },
	func(l *logger.LoggerClient) frontend.Logger { return l },
	func(l *logger.LoggerClient) metrics.Logger { return l },
	func(l *logger.LoggerClient) tracer.Logger { return l },
	func(l *logger.LoggerClient) server.Logger { return l },
)

// sdkModule selects the adapter module for the configured provider.
func sdkModule(cfg reporting.Config) (fx.Option, error) {
	switch cfg.ProviderName() {
	case reporting.ProviderRollbar:
		return rollbar.FXModule, nil
	case reporting.ProviderSentry:
		return sentry.FXModule, nil
	case reporting.ProviderNone:
		return reporting.NopFXModule, nil
	default:
		return nil, fmt.Errorf("%w: %q", reporting.ErrUnknownProvider, cfg.Provider)
	}
}

// newSDK builds an adapter outside of fx, for the one-shot commands.
func newSDK(cfg reporting.Config, log *logger.LoggerClient) (reporting.SDK, error) {
	switch cfg.ProviderName() {
	case reporting.ProviderRollbar:
		return rollbar.NewClientWithDI(rollbar.ClientParams{Logger: log}), nil
	case reporting.ProviderSentry:
		return sentry.NewClientWithDI(sentry.ClientParams{Logger: log}), nil
	case reporting.ProviderNone:
		return reporting.NewNopSDK(), nil
	default:
		return nil, fmt.Errorf("%w: %q", reporting.ErrUnknownProvider, cfg.Provider)
	}
}

// serveOptions composes the long-running application.
func serveOptions(cfg *config.AppConfig) ([]fx.Option, error) {
	sdk, err := sdkModule(cfg.Reporting)
	if err != nil {
		return nil, err
	}

	return []fx.Option{
		config.FXModule(cfg),
		logger.FXModule,
		loggerAdapters,
		metrics.FXModule,
		tracer.FXModule,
		environment.FXModule,
		security.FXModule,
		sdk,
		reporting.FXModule,
		frontend.FXModule,
		server.FXModule,
	}, nil
}

// fxLogger routes fx's own lifecycle events through zap.
var fxLogger = fx.WithLogger(func(l *logger.LoggerClient) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: l.Zap}
})

// newGate wires a gate without fx. The security context is never
// initialized here, so identity always resolves to {}.
func newGate(cfg *config.AppConfig, sdk reporting.SDK, log *logger.LoggerClient) (*reporting.Gate, error) {
	env, err := environment.NewEnvironment(cfg.Environment)
	if err != nil {
		return nil, err
	}

	return reporting.NewGateWithDI(reporting.GateParams{
		Config:      cfg.Reporting,
		Environment: env,
		Security:    security.NewRequestContext(cfg.Security),
		SDK:         sdk,
		Logger:      log,
	}), nil
}
