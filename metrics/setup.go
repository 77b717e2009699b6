package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "errgate"

// Metrics holds the registry, the optional HTTP server exposing it and the
// operation metrics fed through ObserveOperation.
type Metrics struct {
	// Server serves /metrics; nil when the endpoint is disabled.
	Server *http.Server

	// Registry holds runtime, process and build collectors plus every
	// errgate metric.
	Registry *prometheus.Registry

	registerer prometheus.Registerer
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
}

// NewMetrics builds the registry and, unless cfg.Address is Ptr(""), the
// HTTP server. The server is started by the fx lifecycle.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	registerer := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	registerer.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)

	m := &Metrics{
		Registry:   registry,
		registerer: registerer,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Operations performed by errgate components.",
		}, []string{"component", "operation", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of operations performed by errgate components.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"component", "operation"}),
	}
	registerer.MustRegister(m.operations, m.durations)

	addr := DefaultAddress
	if cfg.Address != nil {
		addr = *cfg.Address
	}
	if addr != "" {
		m.Server = &http.Server{
			Addr:    addr,
			Handler: m.Handler(),
		}
	}

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
