package server

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/errgate/frontend"
	"github.com/aalemi-dev/errgate/metrics"
	"github.com/aalemi-dev/errgate/reporting"
	"github.com/aalemi-dev/errgate/security"
	"github.com/aalemi-dev/errgate/tracer"
)

// FXModule provides the *Server and runs it for the application lifetime.
//
// Dependencies required by this module:
// - server.Config, *reporting.Gate, *frontend.Renderer, *security.RequestContext
// - tracer.Tracer, metrics.MetricsCollector and server.Logger are optional
var FXModule = fx.Module("server",
	fx.Provide(NewServerWithDI),
	fx.Invoke(RegisterServerLifecycle),
)

type ServerParams struct {
	fx.In

	Config    Config
	Gate      *reporting.Gate
	Renderer  *frontend.Renderer
	Security  *security.RequestContext
	Tracer    tracer.Tracer            `optional:"true"`
	Collector metrics.MetricsCollector `optional:"true"`
	Logger    Logger                   `optional:"true"`
}

func NewServerWithDI(params ServerParams) *Server {
	s := NewServer(params.Config, params.Gate, params.Renderer, params.Security)
	s.instrument(params.Tracer, params.Collector, params.Logger)
	return s
}

func RegisterServerLifecycle(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr, err := s.Start()
			if err != nil {
				return err
			}
			if s.logger != nil {
				s.logger.Info("http server listening", nil, map[string]interface{}{"address": addr.String()})
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Shutdown(ctx)
		},
	})
}
