package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"
)

type spanImpl struct {
	span traceSpan.Span
}

func (s *spanImpl) End() {
	s.span.End()
}

func (s *spanImpl) SetAttributes(attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}
	s.span.SetAttributes(toAttributes(attrs)...)
}

func (s *spanImpl) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func toAttributes(attrs map[string]interface{}) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			out = append(out, attribute.String(k, val))
		case int:
			out = append(out, attribute.Int(k, val))
		case int64:
			out = append(out, attribute.Int64(k, val))
		case float64:
			out = append(out, attribute.Float64(k, val))
		case bool:
			out = append(out, attribute.Bool(k, val))
		default:
			out = append(out, attribute.String(k, fmt.Sprint(val)))
		}
	}
	return out
}

// StartSpan starts a span named name. It becomes a child of the span in
// ctx, or a new root when there is none.
func (t *TracerClient) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, otSpan := t.tracer.Tracer(instrumentationName).Start(ctx, name)
	return ctx, &spanImpl{span: otSpan}
}

// GetCarrier returns the "traceparent" (and "tracestate", "baggage" when
// present) headers describing the span in ctx.
func (t *TracerClient) GetCarrier(ctx context.Context) map[string]string {
	carrier := propagation.MapCarrier{}
	propagator.Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext returns ctx continuing the remote trace in carrier.
func (t *TracerClient) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	return propagator.Extract(ctx, propagation.MapCarrier(carrier))
}
