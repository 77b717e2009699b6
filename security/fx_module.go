package security

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/errgate/observability"
)

// FXModule provides *RequestContext and the Context interface.
//
// Dependencies required by this module:
// - A security.Config instance must be available in the dependency injection container
// - A Logger and an observability.Observer are optional
var FXModule = fx.Module("security",
	fx.Provide(
		NewRequestContextWithDI,
		fx.Annotate(
			func(r *RequestContext) Context { return r },
			fx.As(new(Context)),
		),
	),
)

type RequestContextParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

func NewRequestContextWithDI(params RequestContextParams) *RequestContext {
	r := NewRequestContext(params.Config)
	r.logger = params.Logger
	r.observer = params.Observer
	return r
}
