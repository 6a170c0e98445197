package tracing

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"weatherapp/pkg/config"
)

// NewProvider creates and installs the global tracer provider.
//
// The sampler is parent-based around a trace-ID ratio read from the
// TRACE_SAMPLE_RATIO environment variable (default 1.0, i.e. sample
// everything). W3C trace context and baggage propagation are installed
// so incoming trace headers are honored.
//
// Callers must Shutdown the returned provider on exit.
func NewProvider() (*sdktrace.TracerProvider, error) {
	ratio := config.GetEnvFloat("TRACE_SAMPLE_RATIO", 1.0)
	if ratio < 0 || ratio > 1 {
		return nil, fmt.Errorf("TRACE_SAMPLE_RATIO must be in [0, 1], got %v", ratio)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return provider, nil
}
