package tracer

import (
	"context"
	"net/http"
)

// Tracer is implemented by *TracerClient.
type Tracer interface {
	// StartSpan starts a span as a child of any span in ctx. Callers must
	// End the returned span.
	StartSpan(ctx context.Context, name string) (context.Context, Span)

	// GetCarrier returns the W3C trace context headers for ctx.
	GetCarrier(ctx context.Context) map[string]string

	// SetCarrierOnContext continues the trace described by carrier.
	SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context

	// Middleware wraps next so every request runs inside a server span.
	Middleware(next http.Handler) http.Handler
}

// Span is a single traced operation.
type Span interface {
	End()

	// SetAttributes adds attributes; strings, ints, int64s, float64s and
	// bools keep their type, anything else is stored via fmt.Sprint.
	SetAttributes(attrs map[string]interface{})

	// RecordError records err and marks the span as failed.
	RecordError(err error)
}
