package rollbar

import (
	"context"
	"time"

	"go.uber.org/fx"

	"github.com/aalemi-dev/errgate/observability"
	"github.com/aalemi-dev/errgate/reporting"
)

// FXModule provides *Client as the reporting.SDK and flushes and closes it
// when the application stops.
var FXModule = fx.Module("rollbar",
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

// shutdownFlushTimeout bounds the final flush when the stop context has no deadline.
const shutdownFlushTimeout = 5 * time.Second

func RegisterLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, shutdownFlushTimeout)
				defer cancel()
			}
			if err := client.Flush(ctx); err != nil && client.logger != nil {
				client.logger.WarnWithContext(ctx, "rollbar queue not drained before shutdown", err)
			}
			return client.Close()
		},
	})
}
