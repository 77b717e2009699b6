package reporting

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/errgate/environment"
	"github.com/aalemi-dev/errgate/observability"
	"github.com/aalemi-dev/errgate/security"
)

// FXModule provides the *Gate and initializes the SDK through it when the
// application starts.
//
// Usage:
//
//	app := fx.New(
//	    environment.FXModule,
//	    security.FXModule,
//	    rollbar.FXModule, // or sentry.FXModule, reporting.NopFXModule
//	    reporting.FXModule,
//	)
//
// Dependencies required by this module:
// - reporting.Config, environment.Provider, security.Context and SDK
// - reporting.Logger and observability.Observer are optional
var FXModule = fx.Module("reporting",
	fx.Provide(NewGateWithDI),
	fx.Invoke(RegisterGateLifecycle),
)

type GateParams struct {
	fx.In

	Config      Config
	Environment environment.Provider
	Security    security.Context
	SDK         SDK
	Logger      Logger                 `optional:"true"`
	Observer    observability.Observer `optional:"true"`
}

func NewGateWithDI(params GateParams) *Gate {
	g := NewGate(params.Config, params.Environment, params.Security, params.SDK)
	g.logger = params.Logger
	g.observer = params.Observer
	return g
}

// RegisterGateLifecycle calls Initialize on start. An initialization failure
// is logged and does not abort startup: the SDK then stays a no-op.
func RegisterGateLifecycle(lc fx.Lifecycle, gate *Gate) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := gate.Initialize(ctx); err != nil && gate.logger != nil {
				gate.logger.ErrorWithContext(ctx, "error reporting unavailable", err, map[string]interface{}{
					"provider": gate.cfg.ProviderName(),
				})
			}
			return nil
		},
	})
}
