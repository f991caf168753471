package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"newtab-feed/internal/observability/metrics"
	envcfg "newtab-feed/internal/pkg/config"
)

const pingTimeout = 5 * time.Second

// PoolConfig sizes the connection pool. The cache table sees one small
// read or write per widget request, so the pool stays small.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// LoadPoolConfig reads DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS,
// DB_CONN_MAX_LIFETIME and DB_CONN_MAX_IDLE_TIME. Values that are not
// positive fall back to the defaults with a warning.
func LoadPoolConfig(logger *slog.Logger) PoolConfig {
	cfg := DefaultPoolConfig()
	s := envcfg.NewSession(logger, nil)
	defer s.Finish()

	positive := func(n int) error { return envcfg.ValidateIntRange(n, 1, 1000) }
	cfg.MaxOpenConns = envcfg.Track(s, "max_open_conns",
		envcfg.LoadEnvInt("DB_MAX_OPEN_CONNS", cfg.MaxOpenConns, positive))
	cfg.MaxIdleConns = envcfg.Track(s, "max_idle_conns",
		envcfg.LoadEnvInt("DB_MAX_IDLE_CONNS", cfg.MaxIdleConns, positive))
	cfg.ConnMaxLifetime = envcfg.Track(s, "conn_max_lifetime",
		envcfg.LoadEnvDuration("DB_CONN_MAX_LIFETIME", cfg.ConnMaxLifetime, envcfg.ValidatePositiveDuration))
	cfg.ConnMaxIdleTime = envcfg.Track(s, "conn_max_idle_time",
		envcfg.LoadEnvDuration("DB_CONN_MAX_IDLE_TIME", cfg.ConnMaxIdleTime, envcfg.ValidatePositiveDuration))
	return cfg
}

// Open connects to PostgreSQL through the pgx stdlib driver, sizes the pool
// from the environment and pings before returning.
func Open(dsn string, logger *slog.Logger) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("database DSN is empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	database, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pool := LoadPoolConfig(logger)
	database.SetMaxOpenConns(pool.MaxOpenConns)
	database.SetMaxIdleConns(pool.MaxIdleConns)
	database.SetConnMaxLifetime(pool.ConnMaxLifetime)
	database.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := database.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("database connected",
		slog.Int("max_open_conns", pool.MaxOpenConns),
		slog.Int("max_idle_conns", pool.MaxIdleConns),
		slog.Duration("conn_max_lifetime", pool.ConnMaxLifetime))
	return database, nil
}

// ReportPoolStats copies the pool's connection counts into the DB gauges.
func ReportPoolStats(database *sql.DB) {
	stats := database.Stats()
	metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)
}
