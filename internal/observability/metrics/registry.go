package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpLabels  = []string{"method", "path", "status"}
	sizeLabels  = []string{"method", "path"}
	sizeBuckets = prometheus.ExponentialBuckets(100, 10, 8)
)

// HTTP server metrics. Paths are normalised before labelling.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests served, by method, path and status.",
	}, httpLabels)

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Time to serve an HTTP request.",
		Buckets: prometheus.DefBuckets,
	}, httpLabels)

	HTTPRequestSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_size_bytes",
		Help:    "Request body size.",
		Buckets: sizeBuckets,
	}, sizeLabels)

	HTTPResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_response_size_bytes",
		Help:    "Response body size.",
		Buckets: sizeBuckets,
	}, sizeLabels)

	// ActiveConnections counts requests currently being served.
	ActiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "http_active_connections",
		Help: "Requests currently in flight.",
	})
)

// Orchestrator metrics. kind is a fetch.Kind; origin is cache, provider or
// fallback.
var (
	// CacheLookupsTotal results: hit, miss, stale, error.
	CacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fetch_cache_lookups_total",
		Help: "Cache reads by kind and result.",
	}, []string{"kind", "result"})

	CacheWriteErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fetch_cache_write_errors_total",
		Help: "Cache writes that failed and were dropped.",
	}, []string{"kind"})

	// ProviderAttemptsTotal result is "success" or a failure class.
	ProviderAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fetch_provider_attempts_total",
		Help: "Provider calls by kind, provider and result.",
	}, []string{"kind", "provider", "result"})

	ProviderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fetch_provider_duration_seconds",
		Help:    "Time taken by one provider call.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
	}, []string{"kind", "provider"})

	FallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fetch_fallbacks_total",
		Help: "Resolutions answered from curated fallback data.",
	}, []string{"kind"})

	ResolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fetch_resolve_duration_seconds",
		Help:    "Time to resolve a value, by where it came from.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
	}, []string{"kind", "origin"})

	// AggregateSourcesTotal origin is provider or backup.
	AggregateSourcesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fetch_aggregate_sources_total",
		Help: "Aggregated hot-topic sources by origin.",
	}, []string{"source", "origin"})
)

// Cache database metrics.
var (
	DBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Cache store query time by operation.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
	}, []string{"operation"})

	DBConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connections_active",
		Help: "Pool connections in use.",
	})

	DBConnectionsIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connections_idle",
		Help: "Idle pool connections.",
	})
)

// RecordHTTPRequest observes one served request. Zero sizes are skipped.
func RecordHTTPRequest(method, path, status string, duration time.Duration, requestSize, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())

	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}
