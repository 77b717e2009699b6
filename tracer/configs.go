package tracer

// Config defines the OpenTelemetry tracer.
type Config struct {
	// ServiceName identifies this process in traces.
	ServiceName string `yaml:"serviceName" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv becomes the deployment.environment resource attribute. The
	// serve command fills it from the application context when empty.
	AppEnv string `yaml:"appEnv" envconfig:"TRACER_APP_ENV"`

	// EnableExport turns on the OTLP HTTP exporter. Without it spans are
	// still created so logs and reports carry trace ids.
	EnableExport bool `yaml:"enableExport" envconfig:"TRACER_ENABLE_EXPORT"`

	// Endpoint overrides the collector URL, e.g. "http://collector:4318/v1/traces".
	// Empty means the OTEL_EXPORTER_OTLP_* environment defaults.
	Endpoint string `yaml:"endpoint" envconfig:"TRACER_ENDPOINT"`
}
