package worker

import (
	"time"

	"newtab-feed/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WorkerMetrics tracks the worker's configuration and its warm runs.
//
//   - worker_config_*: see config.ConfigMetrics
//   - worker_warm_runs_total{status}: success, partial or failure
//   - worker_warm_duration_seconds
//   - worker_warm_kinds_total{kind,origin}: origin is cache, provider,
//     fallback or error
//   - worker_warm_last_success_timestamp
//   - worker_cache_pruned_entries_total
type WorkerMetrics struct {
	*config.ConfigMetrics

	WarmRunsTotal            *prometheus.CounterVec
	WarmDurationSeconds      prometheus.Histogram
	WarmKindsTotal           *prometheus.CounterVec
	WarmLastSuccessTimestamp prometheus.Gauge
	PrunedEntriesTotal       prometheus.Counter
}

// NewWorkerMetrics registers the worker metrics on the default registry.
func NewWorkerMetrics() *WorkerMetrics {
	return NewWorkerMetricsWith(prometheus.DefaultRegisterer)
}

// NewWorkerMetricsWith registers on reg.
func NewWorkerMetricsWith(reg prometheus.Registerer) *WorkerMetrics {
	f := promauto.With(reg)
	return &WorkerMetrics{
		ConfigMetrics: config.NewConfigMetricsWith(reg, "worker"),

		WarmRunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_warm_runs_total",
			Help: "Total number of cache warm runs by status",
		}, []string{"status"}),

		WarmDurationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_warm_duration_seconds",
			Help:    "Duration of cache warm runs in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),

		WarmKindsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_warm_kinds_total",
			Help: "Kinds refreshed by warm runs, by where the value came from",
		}, []string{"kind", "origin"}),

		WarmLastSuccessTimestamp: f.NewGauge(prometheus.GaugeOpts{
			Name: "worker_warm_last_success_timestamp",
			Help: "Unix timestamp of the last warm run without failures",
		}),

		PrunedEntriesTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "worker_cache_pruned_entries_total",
			Help: "Total number of stale cache rows deleted",
		}),
	}
}

// RecordRun counts a finished run and observes its duration.
func (m *WorkerMetrics) RecordRun(status string, d time.Duration) {
	m.WarmRunsTotal.WithLabelValues(status).Inc()
	m.WarmDurationSeconds.Observe(d.Seconds())
	if status == StatusSuccess {
		m.WarmLastSuccessTimestamp.SetToCurrentTime()
	}
}

// RecordKind counts one refreshed kind.
func (m *WorkerMetrics) RecordKind(kind, origin string) {
	m.WarmKindsTotal.WithLabelValues(kind, origin).Inc()
}

// RecordPruned adds n deleted rows.
func (m *WorkerMetrics) RecordPruned(n int64) {
	m.PrunedEntriesTotal.Add(float64(n))
}
