package sentry

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/errgate/observability"
	"github.com/aalemi-dev/errgate/reporting"
)

// FXModule provides *Client as the reporting.SDK and flushes it on stop.
var FXModule = fx.Module("sentry",
	fx.Provide(
		NewClientWithDI,
		fx.Annotate(
			func(c *Client) reporting.SDK { return c },
			fx.As(new(reporting.SDK)),
		),
	),
	fx.Invoke(RegisterLifecycle),
)

type ClientParams struct {
	fx.In

	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

func NewClientWithDI(params ClientParams) *Client {
	c := NewClient()
	c.logger = params.Logger
	c.observer = params.Observer
	return c
}

func RegisterLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := client.Flush(ctx); err != nil && client.logger != nil {
				client.logger.WarnWithContext(ctx, "sentry events not delivered before shutdown", err)
			}
			return nil
		},
	})
}
