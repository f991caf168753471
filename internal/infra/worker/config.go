package worker

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"newtab-feed/internal/pkg/config"
)

// WorkerConfig controls the cache-warming worker.
type WorkerConfig struct {
	// CronSchedule is a five-field cron expression or an @every descriptor.
	CronSchedule string

	// Timezone is the IANA zone the schedule is evaluated in. It is
	// independent of the date-key zone used by the cache.
	Timezone string

	// WarmTimeout bounds one whole warm run.
	WarmTimeout time.Duration

	// WarmConcurrency is how many kinds refresh at the same time.
	WarmConcurrency int

	// ForceRefresh skips the freshness check and refetches every kind.
	ForceRefresh bool

	// PruneAfter deletes cache rows not updated for this long. Zero
	// disables pruning.
	PruneAfter time.Duration

	// HealthPort serves /health and /health/ready.
	HealthPort int

	// MetricsPort serves /metrics and /health/upstreams.
	MetricsPort int
}

// DefaultConfig returns the defaults: warm every 10 minutes so the shortest
// rolling window (15m hot topics) never expires between runs.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CronSchedule:    "*/10 * * * *",
		Timezone:        "UTC",
		WarmTimeout:     2 * time.Minute,
		WarmConcurrency: 3,
		ForceRefresh:    false,
		PruneAfter:      7 * 24 * time.Hour,
		HealthPort:      9091,
		MetricsPort:     9090,
	}
}

// Validate reports every invalid field at once.
func (c *WorkerConfig) Validate() error {
	var errs []error
	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidateDuration(c.WarmTimeout, 10*time.Second, 30*time.Minute); err != nil {
		errs = append(errs, fmt.Errorf("warm timeout: %w", err))
	}
	if err := config.ValidateIntRange(c.WarmConcurrency, 1, 10); err != nil {
		errs = append(errs, fmt.Errorf("warm concurrency: %w", err))
	}
	if c.PruneAfter < 0 {
		errs = append(errs, fmt.Errorf("prune after: must not be negative, got %v", c.PruneAfter))
	}
	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}
	if err := config.ValidateIntRange(c.MetricsPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("metrics port: %w", err))
	}
	if c.HealthPort == c.MetricsPort {
		errs = append(errs, fmt.Errorf("health port and metrics port must differ"))
	}
	return errors.Join(errs...)
}

// LoadConfigFromEnv reads the worker configuration. Invalid values fall
// back to their defaults; every fallback is logged and counted on metrics.
//
// Environment variables:
//   - CRON_SCHEDULE (default "*/10 * * * *")
//   - WORKER_TIMEZONE (default "UTC")
//   - WARM_TIMEOUT: 10s-30m (default 2m)
//   - WARM_CONCURRENCY: 1-10 (default 3)
//   - WARM_FORCE: bool (default false)
//   - PRUNE_AFTER: duration, 0 disables (default 168h)
//   - WORKER_HEALTH_PORT: 1024-65535 (default 9091)
//   - METRICS_PORT: 1024-65535 (default 9090)
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) WorkerConfig {
	cfg := DefaultConfig()
	var cm *config.ConfigMetrics
	if metrics != nil {
		cm = metrics.ConfigMetrics
	}
	s := config.NewSession(logger, cm)

	cfg.CronSchedule = config.Track(s, "cron_schedule",
		config.LoadEnvWithFallback("CRON_SCHEDULE", cfg.CronSchedule, config.ValidateCronSchedule))
	cfg.Timezone = config.Track(s, "timezone",
		config.LoadEnvWithFallback("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone))
	cfg.WarmTimeout = config.Track(s, "warm_timeout",
		config.LoadEnvDuration("WARM_TIMEOUT", cfg.WarmTimeout, func(d time.Duration) error {
			return config.ValidateDuration(d, 10*time.Second, 30*time.Minute)
		}))
	cfg.WarmConcurrency = config.Track(s, "warm_concurrency",
		config.LoadEnvInt("WARM_CONCURRENCY", cfg.WarmConcurrency, func(v int) error {
			return config.ValidateIntRange(v, 1, 10)
		}))
	cfg.ForceRefresh = config.Track(s, "force_refresh", config.LoadEnvBool("WARM_FORCE", cfg.ForceRefresh))
	cfg.PruneAfter = config.Track(s, "prune_after",
		config.LoadEnvDuration("PRUNE_AFTER", cfg.PruneAfter, func(d time.Duration) error {
			if d < 0 {
				return fmt.Errorf("duration must not be negative, got %v", d)
			}
			return nil
		}))
	cfg.HealthPort = config.Track(s, "health_port",
		config.LoadEnvInt("WORKER_HEALTH_PORT", cfg.HealthPort, func(v int) error {
			return config.ValidateIntRange(v, 1024, 65535)
		}))
	cfg.MetricsPort = config.Track(s, "metrics_port",
		config.LoadEnvInt("METRICS_PORT", cfg.MetricsPort, func(v int) error {
			if v == cfg.HealthPort {
				return fmt.Errorf("port %d is taken by the health server", v)
			}
			return config.ValidateIntRange(v, 1024, 65535)
		}))

	s.Finish()
	return cfg
}
