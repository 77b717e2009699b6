package reporting

import (
	"context"
	"time"

	"github.com/aalemi-dev/errgate/observability"
)

// observeOperation notifies the observer about a gate operation if one is configured.
func (g *Gate) observeOperation(operation string, start time.Time, err error, metadata map[string]interface{}) {
	if g == nil || g.observer == nil {
		return
	}

	g.observer.ObserveOperation(observability.OperationContext{
		Component:   "reporting",
		Operation:   operation,
		Resource:    g.env.CurrentContext().String(),
		SubResource: g.cfg.ProviderName(),
		Duration:    time.Since(start),
		Error:       err,
		Metadata:    metadata,
	})
}

func (g *Gate) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if g.logger != nil {
		g.logger.InfoWithContext(ctx, msg, nil, fields)
	}
}

func (g *Gate) logDebug(ctx context.Context, msg string, err error) {
	if g.logger != nil {
		g.logger.DebugWithContext(ctx, msg, err)
	}
}
