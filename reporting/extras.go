package reporting

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

// TraceExtras returns the trace and span IDs of the span carried by ctx, or
// nil when there is none. Adapters merge them into report extras so reports
// can be correlated with traces and logs.
func TraceExtras(ctx context.Context) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}
	return map[string]interface{}{
		"trace_id": sc.TraceID().String(),
		"span_id":  sc.SpanID().String(),
	}
}

// MergeExtras merges maps left to right into a new map; nil when all are empty.
func MergeExtras(extras ...map[string]interface{}) map[string]interface{} {
	var out map[string]interface{}
	for _, m := range extras {
		for k, v := range m {
			if out == nil {
				out = make(map[string]interface{})
			}
			out[k] = v
		}
	}
	return out
}

type logWriter struct {
	sdk SDK
}

// LogWriter returns a writer that reports every line written to it as a
// warning through sdk.
func LogWriter(sdk SDK) io.Writer {
	return logWriter{sdk: sdk}
}

func (w logWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			w.sdk.Report(context.Background(), LevelWarning, errors.New(line), nil)
		}
	}
	return len(p), nil
}

// InstallLogHandler tees the standard library logger into sdk. Adapters call
// it when InitOnce is asked to install an error handler.
func InstallLogHandler(sdk SDK) {
	log.SetOutput(io.MultiWriter(log.Writer(), LogWriter(sdk)))
}
