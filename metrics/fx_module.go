package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/errgate/observability"
)

// Logger is the logging surface used by this package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// FXModule provides *Metrics, MetricsCollector and observability.Observer,
// and runs the /metrics server for the lifetime of the application.
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{ServiceName: "errgate"}
//	    }),
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		fx.Annotate(
			func(m *Metrics) MetricsCollector { return m },
			fx.As(new(MetricsCollector)),
		),
		fx.Annotate(
			func(m *Metrics) observability.Observer { return m },
			fx.As(new(observability.Observer)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
	Logger    Logger `optional:"true"`
}

// RegisterMetricsLifecycle binds the listener on start so address errors
// fail startup, serves in the background and shuts the server down on stop.
func RegisterMetricsLifecycle(params LifecycleParams) {
	m, log := params.Metrics, params.Logger
	if m.Server == nil {
		return
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", m.Server.Addr)
			if err != nil {
				return err
			}
			if log != nil {
				log.Info("Starting metrics server", nil, map[string]interface{}{
					"address": ln.Addr().String(),
				})
			}
			go func() {
				if err := m.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) && log != nil {
					log.Error("Metrics server stopped", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if log != nil {
				log.Info("Shutting down metrics server", nil)
			}
			return m.Server.Shutdown(ctx)
		},
	})
}
