package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// ServiceName names the global tracer.
const ServiceName = "newtab-feed"

// GetTracer returns the service tracer from the currently installed
// provider. It is looked up per call so that a provider installed later
// takes effect.
func GetTracer() trace.Tracer {
	return otel.Tracer(ServiceName)
}

// Init installs a W3C trace-context propagator and an SDK tracer provider
// sampling ratio of root traces. Incoming sampled parents are always
// honoured. The returned function flushes and stops the provider.
func Init(ratio float64) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown
}
