package metrics

// MetricsCollector creates application metrics on the shared registry.
// Everything created here is exposed next to the operation metrics.
type MetricsCollector interface {
	// CreateCounter creates and registers a counter vector.
	//
	//   counter := m.CreateCounter("http_requests_total", "Total HTTP requests", []string{"path", "status"})
	//   counter.WithLabelValues("/healthz", "200").Inc()
	CreateCounter(name, help string, labels []string) Counter

	// CreateHistogram creates and registers a histogram vector. Nil buckets
	// means prometheus.DefBuckets.
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram
}
