package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CreateCounter creates a counter vector and registers it on the shared
// registry. It panics when the name is already registered.
func (m *Metrics) CreateCounter(name, help string, labels []string) Counter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
	}, labels)
	m.registerer.MustRegister(vec)
	return &counterVec{vec: vec}
}

// CreateHistogram creates a histogram vector and registers it on the
// shared registry. It panics when the name is already registered.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) Histogram {
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}, labels)
	m.registerer.MustRegister(vec)
	return &histogramVec{vec: vec}
}
