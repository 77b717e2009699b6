// Package tracer wires OpenTelemetry tracing for errgate.
//
// NewClient installs a global tracer provider and the W3C propagators. The
// HTTP host wraps its handlers with TracerClient.Middleware, so every
// request has a server span; the logger's ...WithContext methods and
// reporting.TraceExtras then pick up the trace and span ids from the
// request context, which ties log lines, error reports and traces together.
//
// With Config.EnableExport spans are batched to an OTLP HTTP collector
// (Config.Endpoint or the OTEL_EXPORTER_OTLP_* variables). Without it spans
// are recorded but never leave the process.
package tracer
