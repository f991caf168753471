package config

import (
	"fmt"
	"log/slog"
	"time"

	envcfg "newtab-feed/internal/pkg/config"
)

// AppConfig is the environment configuration of the API server.
type AppConfig struct {
	Addr             string
	DatabaseURL      string
	Timezone         string
	SourcesFile      string
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
	TraceSampleRatio float64
	SLOInterval      time.Duration
	Version          string
	CacheMaxEntries  int
	CacheTTL         time.Duration
}

// DefaultAppConfig returns the built-in defaults. An empty DatabaseURL
// selects the in-memory cache store.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Addr:             ":8080",
		Timezone:         "UTC",
		RequestTimeout:   30 * time.Second,
		ShutdownTimeout:  10 * time.Second,
		TraceSampleRatio: 1.0,
		SLOInterval:      time.Minute,
		Version:          "dev",
		CacheMaxEntries:  10000,
		CacheTTL:         48 * time.Hour,
	}
}

// Location resolves Timezone. Values loaded through LoadAppConfig are
// already validated.
func (c AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// LoadAppConfig reads the API configuration from the environment. Invalid
// values fall back to defaults and are logged and counted on metrics.
//
// Environment variables:
//   - API_ADDR: listen address (default ":8080")
//   - DATABASE_URL: PostgreSQL DSN; empty keeps the cache in memory
//   - APP_TIMEZONE: IANA zone for date keys (default "UTC")
//   - SOURCES_FILE: optional YAML provider/freshness overrides
//   - REQUEST_TIMEOUT: per-request deadline, 1s-2m (default 30s)
//   - SHUTDOWN_TIMEOUT: graceful shutdown budget, 1s-1m (default 10s)
//   - TRACE_SAMPLE_RATIO: 0-1 (default 1)
//   - SLO_INTERVAL: SLO gauge refresh period, 10s-1h (default 1m)
//   - APP_VERSION: reported by /health (default "dev")
//   - MEMORY_CACHE_MAX_ENTRIES: in-memory store key cap, 100-1000000 (default 10000)
//   - MEMORY_CACHE_TTL: in-memory entry lifetime, 1h-720h (default 48h)
func LoadAppConfig(logger *slog.Logger, metrics *envcfg.ConfigMetrics) AppConfig {
	cfg := DefaultAppConfig()
	s := envcfg.NewSession(logger, metrics)

	cfg.Addr = envcfg.Track(s, "addr",
		envcfg.LoadEnvWithFallback("API_ADDR", cfg.Addr, envcfg.ValidateListenAddr))
	cfg.DatabaseURL = envcfg.LoadEnvString("DATABASE_URL", "")
	cfg.Timezone = envcfg.Track(s, "timezone",
		envcfg.LoadEnvWithFallback("APP_TIMEZONE", cfg.Timezone, envcfg.ValidateTimezone))
	cfg.SourcesFile = envcfg.LoadEnvString("SOURCES_FILE", "")
	cfg.RequestTimeout = envcfg.Track(s, "request_timeout",
		envcfg.LoadEnvDuration("REQUEST_TIMEOUT", cfg.RequestTimeout, func(d time.Duration) error {
			return envcfg.ValidateDuration(d, time.Second, 2*time.Minute)
		}))
	cfg.ShutdownTimeout = envcfg.Track(s, "shutdown_timeout",
		envcfg.LoadEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout, func(d time.Duration) error {
			return envcfg.ValidateDuration(d, time.Second, time.Minute)
		}))
	cfg.TraceSampleRatio = envcfg.Track(s, "trace_sample_ratio",
		envcfg.LoadEnvFloat("TRACE_SAMPLE_RATIO", cfg.TraceSampleRatio, envcfg.ValidateRatio))
	cfg.SLOInterval = envcfg.Track(s, "slo_interval",
		envcfg.LoadEnvDuration("SLO_INTERVAL", cfg.SLOInterval, func(d time.Duration) error {
			return envcfg.ValidateDuration(d, 10*time.Second, time.Hour)
		}))
	cfg.Version = envcfg.LoadEnvString("APP_VERSION", cfg.Version)
	cfg.CacheMaxEntries = envcfg.Track(s, "memory_cache_max_entries",
		envcfg.LoadEnvInt("MEMORY_CACHE_MAX_ENTRIES", cfg.CacheMaxEntries, func(n int) error {
			return envcfg.ValidateIntRange(n, 100, 1000000)
		}))
	cfg.CacheTTL = envcfg.Track(s, "memory_cache_ttl",
		envcfg.LoadEnvDuration("MEMORY_CACHE_TTL", cfg.CacheTTL, func(d time.Duration) error {
			return envcfg.ValidateDuration(d, time.Hour, 720*time.Hour)
		}))

	s.Finish()
	return cfg
}
