// Package metrics exposes Prometheus metrics for errgate.
//
// A single registry carries the Go runtime, process and build info
// collectors, plus:
//
//	errgate_operations_total{component,operation,status}
//	errgate_operation_duration_seconds{component,operation}
//
// fed by *Metrics acting as the observability.Observer of the reporting
// gate, the SDK adapters and the security middleware. Additional metrics
// are created through MetricsCollector; the HTTP host uses it for request
// and recovered panic counters.
//
// Every metric carries a constant "service" label from Config.ServiceName.
// The endpoint listens on Config.Address (default ":9090") and is disabled
// with Ptr("").
package metrics
