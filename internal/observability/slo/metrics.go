// Package slo publishes service level indicators computed from the
// service's own Prometheus counters.
package slo

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Targets.
const (
	// AvailabilitySLO is the share of non-5xx responses, in percent.
	AvailabilitySLO = 99.9

	// FallbackRatioSLO is the maximum share of resolutions answered from
	// static fallback data. Above it, upstream providers are degraded.
	FallbackRatioSLO = 0.05

	// CacheHitRatioSLO is the minimum share of cache lookups that hit.
	CacheHitRatioSLO = 0.5
)

// Source metric names.
const (
	httpRequestsMetric = "http_requests_total"
	resolveMetric      = "fetch_resolve_duration_seconds"
	cacheLookupMetric  = "fetch_cache_lookups_total"
)

var (
	SLOAvailability = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_availability_ratio",
		Help: "Share of non-5xx responses over the last window (0-1), target: 0.999",
	})

	SLOFallbackRatio = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_fallback_ratio",
		Help: "Share of resolutions served from fallback data over the last window (0-1), target: <= 0.05",
	})

	SLOCacheHitRatio = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_cache_hit_ratio",
		Help: "Share of cache lookups that hit over the last window (0-1), target: >= 0.5",
	})
)

// Totals are cumulative counter values read from one gather.
type Totals struct {
	Requests    float64
	ServerError float64
	Resolutions float64
	Fallbacks   float64
	Lookups     float64
	Hits        float64
}

// Snapshot holds the ratios over one window. A ratio with no events in the
// window is reported as its ideal value (1 for availability and hits, 0 for
// fallbacks).
type Snapshot struct {
	Availability  float64
	FallbackRatio float64
	CacheHitRatio float64
}

// Read extracts Totals from gathered metric families.
func Read(families []*dto.MetricFamily) Totals {
	var t Totals
	for _, mf := range families {
		switch mf.GetName() {
		case httpRequestsMetric:
			for _, m := range mf.GetMetric() {
				v := m.GetCounter().GetValue()
				t.Requests += v
				if status := label(m, "status"); len(status) == 3 && status[0] == '5' {
					t.ServerError += v
				}
			}
		case resolveMetric:
			for _, m := range mf.GetMetric() {
				n := float64(m.GetHistogram().GetSampleCount())
				t.Resolutions += n
				if label(m, "origin") == "fallback" {
					t.Fallbacks += n
				}
			}
		case cacheLookupMetric:
			for _, m := range mf.GetMetric() {
				v := m.GetCounter().GetValue()
				t.Lookups += v
				if label(m, "result") == "hit" {
					t.Hits += v
				}
			}
		}
	}
	return t
}

func label(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

// Tracker turns successive gathers into windowed ratios.
type Tracker struct {
	gatherer prometheus.Gatherer
	mu       sync.Mutex
	prev     Totals
}

// NewTracker creates a tracker reading from g. The first Update covers
// everything since process start.
func NewTracker(g prometheus.Gatherer) *Tracker {
	return &Tracker{gatherer: g}
}

// Update gathers, computes the ratios since the previous call and sets the
// SLO gauges.
func (tr *Tracker) Update() (Snapshot, error) {
	families, err := tr.gatherer.Gather()
	if err != nil {
		return Snapshot{}, fmt.Errorf("gather metrics: %w", err)
	}
	cur := Read(families)

	tr.mu.Lock()
	prev := tr.prev
	tr.prev = cur
	tr.mu.Unlock()

	s := Snapshot{
		Availability:  1 - ratio(cur.ServerError-prev.ServerError, cur.Requests-prev.Requests, 0),
		FallbackRatio: ratio(cur.Fallbacks-prev.Fallbacks, cur.Resolutions-prev.Resolutions, 0),
		CacheHitRatio: ratio(cur.Hits-prev.Hits, cur.Lookups-prev.Lookups, 1),
	}
	SLOAvailability.Set(s.Availability)
	SLOFallbackRatio.Set(s.FallbackRatio)
	SLOCacheHitRatio.Set(s.CacheHitRatio)
	return s, nil
}

// ratio returns num/den, or empty when den is not positive.
func ratio(num, den, empty float64) float64 {
	if den <= 0 {
		return empty
	}
	return num / den
}

// Met reports whether s meets every target.
func (s Snapshot) Met() bool {
	return s.Availability*100 >= AvailabilitySLO &&
		s.FallbackRatio <= FallbackRatioSLO &&
		s.CacheHitRatio >= CacheHitRatioSLO
}

// Run calls Update every interval until ctx is done. Windows that miss a
// target are logged at warn.
func (tr *Tracker) Run(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s, err := tr.Update()
			if err != nil {
				logger.Error("slo update failed", slog.Any("error", err))
				continue
			}
			if !s.Met() {
				logger.Warn("slo target missed",
					slog.Float64("availability", s.Availability),
					slog.Float64("fallback_ratio", s.FallbackRatio),
					slog.Float64("cache_hit_ratio", s.CacheHitRatio))
			}
		}
	}
}
