package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// instrumentationName names the tracer used for every span.
const instrumentationName = "github.com/aalemi-dev/errgate"

// TracerClient owns the tracer provider. It is safe for concurrent use.
type TracerClient struct {
	tracer *trace.TracerProvider
}

// NewClient builds the tracer provider and installs it, together with the
// W3C trace context and baggage propagators, as the otel globals.
//
//	client, err := tracer.NewClient(tracer.Config{ServiceName: "errgate", AppEnv: "production"})
//	ctx, span := client.StartSpan(ctx, "report")
//	defer span.End()
func NewClient(cfg Config) (*TracerClient, error) {
	return newClientWithContext(context.Background(), cfg)
}

func newClientWithContext(ctx context.Context, cfg Config) (*TracerClient, error) {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		var httpOptions []otlptracehttp.Option
		if cfg.Endpoint != "" {
			httpOptions = append(httpOptions, otlptracehttp.WithEndpointURL(cfg.Endpoint))
		}
		exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(httpOptions...))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagator)

	return &TracerClient{tracer: tp}, nil
}

var propagator = propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
