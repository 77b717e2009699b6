package metrics

import (
	"github.com/aalemi-dev/errgate/observability"
)

// ObserveOperation implements observability.Observer.
func (m *Metrics) ObserveOperation(ctx observability.OperationContext) {
	status := "success"
	if ctx.Error != nil {
		status = "error"
	}
	m.operations.WithLabelValues(ctx.Component, ctx.Operation, status).Inc()
	m.durations.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())
}
