package config

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ConfigMetrics tracks configuration loads of one component. Metric names are
// prefixed with the component, e.g. api_config_fallbacks_total.
type ConfigMetrics struct {
	LoadTimestamp         prometheus.Gauge
	ValidationErrorsTotal *prometheus.CounterVec
	FallbacksTotal        *prometheus.CounterVec
	FallbackActive        prometheus.Gauge
}

// NewConfigMetrics registers the metrics of component on the default
// registry. Registering the same component twice panics.
func NewConfigMetrics(component string) *ConfigMetrics {
	return NewConfigMetricsWith(prometheus.DefaultRegisterer, component)
}

// NewConfigMetricsWith registers on reg.
func NewConfigMetricsWith(reg prometheus.Registerer, component string) *ConfigMetrics {
	f := promauto.With(reg)
	return &ConfigMetrics{
		LoadTimestamp: f.NewGauge(prometheus.GaugeOpts{
			Name: fmt.Sprintf("%s_config_load_timestamp", component),
			Help: fmt.Sprintf("Unix timestamp of last %s configuration load", component),
		}),
		ValidationErrorsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_config_validation_errors_total", component),
			Help: fmt.Sprintf("Total number of %s configuration validation errors", component),
		}, []string{"field"}),
		FallbacksTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_config_fallbacks_total", component),
			Help: fmt.Sprintf("Total number of %s configuration fallbacks", component),
		}, []string{"field"}),
		FallbackActive: f.NewGauge(prometheus.GaugeOpts{
			Name: fmt.Sprintf("%s_config_fallback_active", component),
			Help: fmt.Sprintf("1 if any %s configuration fallback is active, 0 otherwise", component),
		}),
	}
}

// RecordLoadTimestamp sets the load timestamp to now.
func (m *ConfigMetrics) RecordLoadTimestamp() { m.LoadTimestamp.SetToCurrentTime() }

// RecordValidationError counts a rejected value for field.
func (m *ConfigMetrics) RecordValidationError(field string) {
	m.ValidationErrorsTotal.WithLabelValues(field).Inc()
}

// RecordFallback counts a default applied to field.
func (m *ConfigMetrics) RecordFallback(field string) {
	m.FallbacksTotal.WithLabelValues(field).Inc()
}

// SetFallbackActive reports whether the current configuration uses any
// fallback.
func (m *ConfigMetrics) SetFallbackActive(active bool) {
	if active {
		m.FallbackActive.Set(1)
		return
	}
	m.FallbackActive.Set(0)
}

// Session collects the results of one configuration load, logging and
// counting every fallback. Call Finish once all fields are loaded.
type Session struct {
	logger   *slog.Logger
	metrics  *ConfigMetrics
	fallback bool
}

// NewSession starts a load. metrics may be nil.
func NewSession(logger *slog.Logger, metrics *ConfigMetrics) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{logger: logger, metrics: metrics}
}

// Track records r under field and returns its value.
func Track[T any](s *Session, field string, r Result[T]) T {
	if !r.FallbackApplied {
		return r.Value
	}
	s.fallback = true
	s.logger.Warn("configuration fallback applied",
		slog.String("field", field),
		slog.String("env_key", r.Key),
		slog.String("warning", r.Warning))
	if s.metrics != nil {
		s.metrics.RecordValidationError(field)
		s.metrics.RecordFallback(field)
	}
	return r.Value
}

// FallbackApplied reports whether any tracked field fell back.
func (s *Session) FallbackApplied() bool { return s.fallback }

// Finish updates the fallback gauge and load timestamp.
func (s *Session) Finish() {
	if s.metrics == nil {
		return
	}
	s.metrics.SetFallbackActive(s.fallback)
	s.metrics.RecordLoadTimestamp()
}
