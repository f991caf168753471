package metrics

import "time"

// RecordCacheLookup records the outcome of a cache read.
// Result should be one of "hit", "miss", "stale" or "error".
func RecordCacheLookup(kind, result string) {
	CacheLookupsTotal.WithLabelValues(kind, result).Inc()
}

// RecordCacheWriteError records a cache write that failed and was swallowed.
func RecordCacheWriteError(kind string) {
	CacheWriteErrorsTotal.WithLabelValues(kind).Inc()
}

// RecordProviderAttempt records one provider call and its failure class.
func RecordProviderAttempt(kind, provider, result string, duration time.Duration) {
	ProviderAttemptsTotal.WithLabelValues(kind, provider, result).Inc()
	ProviderDuration.WithLabelValues(kind, provider).Observe(duration.Seconds())
}

// RecordFallback records an invocation that fell through to static data.
func RecordFallback(kind string) {
	FallbacksTotal.WithLabelValues(kind).Inc()
}

// RecordResolve records the total duration of an orchestrator invocation.
func RecordResolve(kind, origin string, duration time.Duration) {
	ResolveDuration.WithLabelValues(kind, origin).Observe(duration.Seconds())
}

// RecordAggregateSource records whether an aggregated source was filled by a
// provider or by its backup list.
func RecordAggregateSource(source, origin string) {
	AggregateSourcesTotal.WithLabelValues(source, origin).Inc()
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "cache_get", "cache_set").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
