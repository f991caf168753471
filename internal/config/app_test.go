package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	envcfg "newtab-feed/internal/pkg/config"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestLoadAppConfig_Defaults(t *testing.T) {
	for _, key := range []string{"API_ADDR", "DATABASE_URL", "APP_TIMEZONE", "SOURCES_FILE",
		"REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT", "TRACE_SAMPLE_RATIO", "SLO_INTERVAL", "APP_VERSION",
		"MEMORY_CACHE_MAX_ENTRIES", "MEMORY_CACHE_TTL"} {
		t.Setenv(key, "")
	}
	cfg := LoadAppConfig(quietLogger(), nil)
	assert.Equal(t, DefaultAppConfig(), cfg)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadAppConfig_FromEnv(t *testing.T) {
	t.Setenv("API_ADDR", "127.0.0.1:9000")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/newtab")
	t.Setenv("APP_TIMEZONE", "Asia/Shanghai")
	t.Setenv("SOURCES_FILE", "/etc/newtab/sources.yaml")
	t.Setenv("REQUEST_TIMEOUT", "15s")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("TRACE_SAMPLE_RATIO", "0.1")
	t.Setenv("SLO_INTERVAL", "30s")
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("MEMORY_CACHE_MAX_ENTRIES", "2000")
	t.Setenv("MEMORY_CACHE_TTL", "6h")

	cfg := LoadAppConfig(quietLogger(), nil)
	assert.Equal(t, AppConfig{
		Addr:             "127.0.0.1:9000",
		DatabaseURL:      "postgres://u:p@db:5432/newtab",
		Timezone:         "Asia/Shanghai",
		SourcesFile:      "/etc/newtab/sources.yaml",
		RequestTimeout:   15 * time.Second,
		ShutdownTimeout:  5 * time.Second,
		TraceSampleRatio: 0.1,
		SLOInterval:      30 * time.Second,
		Version:          "1.2.3",
		CacheMaxEntries:  2000,
		CacheTTL:         6 * time.Hour,
	}, cfg)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Shanghai", loc.String())
}

func TestLoadAppConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("API_ADDR", "eight-thousand")
	t.Setenv("APP_TIMEZONE", "Local")
	t.Setenv("REQUEST_TIMEOUT", "10m")
	t.Setenv("TRACE_SAMPLE_RATIO", "2")
	t.Setenv("MEMORY_CACHE_MAX_ENTRIES", "5")
	t.Setenv("MEMORY_CACHE_TTL", "0s")

	metrics := envcfg.NewConfigMetricsWith(prometheus.NewRegistry(), "apptest")
	cfg := LoadAppConfig(quietLogger(), metrics)

	def := DefaultAppConfig()
	assert.Equal(t, def.Addr, cfg.Addr)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, def.RequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, def.TraceSampleRatio, cfg.TraceSampleRatio)
	assert.Equal(t, def.CacheMaxEntries, cfg.CacheMaxEntries)
	assert.Equal(t, def.CacheTTL, cfg.CacheTTL)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.FallbackActive))
	for _, field := range []string{"addr", "timezone", "request_timeout", "trace_sample_ratio",
		"memory_cache_max_entries", "memory_cache_ttl"} {
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues(field)), field)
	}
}
