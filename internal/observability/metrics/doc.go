// Package metrics defines the Prometheus collectors shared across the
// service. Everything registers with the default registry and is served on
// /metrics.
//
// The fetch collectors describe the orchestrator: cache lookups by result,
// provider attempts by failure class, fallback use and how each resolution
// was answered.
//
//	start := time.Now()
//	metrics.RecordProviderAttempt("weather", "open-meteo", "timeout", time.Since(start))
//	metrics.RecordFallback("weather")
package metrics
