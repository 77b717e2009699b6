package metrics

// DefaultAddress is used when Config.Address is nil.
const DefaultAddress = ":9090"

// Config defines the Prometheus metrics endpoint.
type Config struct {
	// Address is where the /metrics HTTP server listens.
	//
	//   - ":9090"          → all interfaces, port 9090
	//   - "127.0.0.1:9090" → localhost only
	//   - nil              → DefaultAddress
	//   - Ptr("")          → no server; operations are still counted
	//
	// YAML key "address", environment variable METRICS_ADDRESS.
	Address *string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName is attached as a constant "service" label to every metric.
	ServiceName string `yaml:"serviceName" envconfig:"METRICS_SERVICE_NAME"`
}

// Ptr returns a pointer to s.
//
//	cfg := metrics.Config{Address: metrics.Ptr("")} // disable the endpoint
func Ptr(s string) *string {
	return &s
}
