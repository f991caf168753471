// Package tracing wires OpenTelemetry into the service.
//
// Init installs an SDK tracer provider so that every request and every
// orchestrator resolution gets a real trace ID, which is echoed to clients
// in X-Trace-Id and written to request logs. No exporter is configured;
// spans are sampled for correlation only until a collector is added.
//
//	shutdown := tracing.Init(1.0)
//	defer func() { _ = shutdown(context.Background()) }()
//
//	ctx, span := tracing.GetTracer().Start(ctx, "widget.weather")
//	defer span.End()
package tracing
