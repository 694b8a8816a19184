// Package otel exports sparsecalc spans over OTLP/HTTP when a collector is
// configured.
package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/katalvlaran/sparsecalc/internal/platform/config"
)

// Full names of the variables read by Setup.
const (
	EnvEndpoint = config.EnvPrefix + "OTEL_ENDPOINT"
	EnvEnabled  = config.EnvPrefix + "OTEL_ENABLED"
)

// Settings selects the collector. Tags are relative to config.EnvPrefix.
type Settings struct {
	Endpoint string `env:"OTEL_ENDPOINT"`
	Enabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
}

// Active reports whether spans should leave the process.
func (s Settings) Active() bool { return s.Enabled && s.Endpoint != "" }

// Setup reads Settings from the environment and, if they are active,
// installs a global batching tracer provider tagged with serviceName.
// Otherwise spans stay on the default no-op provider.
//
// The returned shutdown flushes buffered spans; it is never nil.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	var s Settings
	if err := config.ParseEnv(&s); err != nil {
		return noop, fmt.Errorf("otel: %w", err)
	}
	if !s.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(s.Endpoint))
	if err != nil {
		return noop, fmt.Errorf("otel: exporter for %s: %w", s.Endpoint, err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, fmt.Errorf("otel: resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
