// Package observability groups the logging, metrics and tracing support
// used by the API server and the cache-warming worker.
//
//   - logging: slog construction and context propagation
//   - metrics: Prometheus collectors for HTTP, the fetch orchestrator and the store
//   - tracing: OpenTelemetry provider setup and HTTP middleware
//   - slo: availability and latency objectives derived from those metrics
package observability
