// Package telemetry provides optional OpenTelemetry tracing.
//
// Tracing is enabled only when OTEL_EXPORTER_OTLP_ENDPOINT is set. The
// exporter reads the remaining standard OTEL_* variables itself, e.g.
// OTEL_EXPORTER_OTLP_HEADERS for API keys.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "grid-arcade"
	serviceVersion = "0.1.0"

	// EndpointEnv switches tracing on.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

// Enabled reports whether an OTLP endpoint is configured.
func Enabled() bool {
	return os.Getenv(EndpointEnv) != ""
}

// Setup installs a batching OTLP/HTTP tracer provider as the global
// provider. Without an endpoint it installs nothing and returns a no-op
// shutdown, leaving the global provider as the default no-op.
func Setup(ctx context.Context) (ShutdownFunc, error) {
	if !Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("telemetry: cannot create exporter: %w", err)
	}

	// Own resource rather than merging with resource.Default() to avoid
	// schema URL conflicts.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: cannot build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

// IntentAttrs describes one applied intent on a span.
func IntentAttrs(gameID, intent string, changed, gameOver bool, score int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("game.id", gameID),
		attribute.String("game.intent", intent),
		attribute.Bool("game.changed", changed),
		attribute.Bool("game.over", gameOver),
		attribute.Int("game.score", score),
	}
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
