package environment

import "go.uber.org/fx"

// FXModule provides *Environment and the Provider interface.
//
// Dependencies required by this module:
// - An environment.Config instance must be available in the dependency injection container
var FXModule = fx.Module("environment",
	fx.Provide(
		NewEnvironment,
		fx.Annotate(
			func(e *Environment) Provider { return e },
			fx.As(new(Provider)),
		),
	),
)
