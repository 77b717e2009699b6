package tracer

import (
	"fmt"
	"net/http"
	"strings"

	traceSpan "go.opentelemetry.io/otel/trace"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware continues any incoming W3C trace and runs next inside a
// server span named "<METHOD> <path>". Responses with status >= 500 mark
// the span as failed.
func (t *TracerClient) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		carrier := make(map[string]string, len(r.Header))
		for key, values := range r.Header {
			if len(values) > 0 {
				carrier[strings.ToLower(key)] = values[0]
			}
		}
		ctx := t.SetCarrierOnContext(r.Context(), carrier)

		ctx, otSpan := t.tracer.Tracer(instrumentationName).Start(ctx,
			r.Method+" "+r.URL.Path,
			traceSpan.WithSpanKind(traceSpan.SpanKindServer),
		)
		defer otSpan.End()

		span := &spanImpl{span: otSpan}
		span.SetAttributes(map[string]interface{}{
			"http.method": r.Method,
			"http.target": r.URL.Path,
		})

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		span.SetAttributes(map[string]interface{}{"http.status_code": rec.status})
		if rec.status >= http.StatusInternalServerError {
			span.RecordError(fmt.Errorf("http status %d", rec.status))
		}
	})
}
