// Package telemetry wires OpenTelemetry tracing for outbound API calls.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DefaultServiceName is reported when no service name is configured.
const DefaultServiceName = "carfleet"

// TracerName names the tracer used by the API client.
const TracerName = "carfleet/api"

// Options configures the exporter.
type Options struct {
	Endpoint    string // host:port of the OTLP/HTTP collector; empty disables export
	ServiceName string
	Insecure    bool
}

// Provider owns the tracer provider when export is enabled.
type Provider struct {
	provider *sdktrace.TracerProvider
	enabled  bool
}

// Setup installs a batching OTLP exporter as the global tracer provider and
// the W3C trace-context propagator. With no endpoint it returns a disabled
// provider and the global no-op tracer stays in place.
func Setup(ctx context.Context, opts Options) (*Provider, error) {
	otel.SetTextMapPropagator(propagation.TraceContext{})
	if opts.Endpoint == "" {
		return &Provider{}, nil
	}

	exporterOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.Endpoint)}
	if opts.Insecure {
		exporterOpts = append(exporterOpts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, err
	}

	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	return &Provider{provider: provider, enabled: true}, nil
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.enabled
}

// Tracer returns the API client tracer from the global provider.
func Tracer() oteltrace.Tracer {
	return otel.Tracer(TracerName)
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.provider == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
