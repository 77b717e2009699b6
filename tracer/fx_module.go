package tracer

import (
	"context"

	"go.uber.org/fx"
)

// Logger is the logging surface used by this package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
}

// FXModule provides *TracerClient and Tracer and shuts the provider down,
// flushing pending spans, when the application stops.
//
//	app := fx.New(
//	    tracer.FXModule,
//	    fx.Provide(func() tracer.Config { return tracer.Config{ServiceName: "errgate"} }),
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Tracer    *TracerClient
	Logger    Logger `optional:"true"`
}

func RegisterTracerLifecycle(params LifecycleParams) {
	tracer := params.Tracer
	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer.tracer == nil {
				return nil
			}
			if params.Logger != nil {
				params.Logger.Info("Shutting down tracer", nil)
			}
			return tracer.tracer.Shutdown(ctx)
		},
	})
}
