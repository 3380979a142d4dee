// Package tracing wraps an OpenTelemetry TracerProvider so the batch
// dispatcher can wrap each run in a span without every caller depending on
// otel directly. Unlike its ancestor, this Provider only ever exports to
// stdout or nowhere: rosettes is a library, not a long-running service, so
// wiring a remote collector (otlp/grpc) belongs to the embedding
// application, not to rosettes itself (see DESIGN.md).
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config configures the tracing subsystem.
type Config struct {
	Enabled     bool
	Exporter    string // "none" or "stdout"
	ServiceName string
}

// DefaultConfig disables tracing, matching a library's zero-overhead
// default: callers opt in explicitly by passing NewProvider a Config with
// Enabled set.
func DefaultConfig() Config {
	return Config{Enabled: false, Exporter: "none", ServiceName: "rosettes"}
}

// Provider manages the OpenTelemetry tracer provider, exposing a Tracer
// that is always safe to call even when tracing is disabled.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
	enabled  bool
}

// NewProvider builds a Provider from cfg. A disabled config returns a
// genuine no-op tracer, not a real provider configured to drop spans, so
// there is zero span-creation overhead when tracing isn't wanted.
func NewProvider(cfg Config) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{tracer: noop.NewTracerProvider().Tracer("noop"), enabled: false}, nil
	}

	var exporter sdktrace.SpanExporter
	var err error
	switch cfg.Exporter {
	case "stdout", "":
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}
	case "none":
		exporter = nil
	default:
		return nil, fmt.Errorf("unsupported tracing exporter %q", cfg.Exporter)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "rosettes"
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	provider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)

	return &Provider{provider: provider, tracer: provider.Tracer(serviceName), enabled: true}, nil
}

// Tracer returns the configured tracer. Safe to call unconditionally.
func (p *Provider) Tracer() trace.Tracer { return p.tracer }

// Enabled reports whether the provider was built from an enabled Config.
// With Exporter "none" it still reports true, although the recorded spans
// are exported nowhere.
func (p *Provider) Enabled() bool { return p.enabled }

// Shutdown flushes and shuts down the underlying provider, a no-op when
// tracing was disabled.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.provider != nil {
		return p.provider.Shutdown(ctx)
	}
	return nil
}
