package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"newtab-feed/internal/observability/metrics"
	"newtab-feed/internal/resilience/circuitbreaker"
	"newtab-feed/internal/resilience/retry"
)

// CacheRepo stores cache entries in the cache_entries table.
// Reads and writes go through the database circuit breaker and are retried
// with the DB backoff policy on transient connection errors.
type CacheRepo struct {
	db    *circuitbreaker.DBBreaker
	retry retry.Config
}

func NewCacheRepo(db *sql.DB) *CacheRepo {
	return NewCacheRepoWithConfig(db, circuitbreaker.DBConfig(), retry.DBConfig())
}

// NewCacheRepoWithConfig is NewCacheRepo with explicit breaker and retry settings.
func NewCacheRepoWithConfig(db *sql.DB, cb circuitbreaker.Config, rc retry.Config) *CacheRepo {
	return &CacheRepo{
		db:    circuitbreaker.NewDBBreaker(db, cb),
		retry: rc,
	}
}

func (repo *CacheRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `
SELECT value
FROM cache_entries
WHERE key = $1
LIMIT 1`
	start := time.Now()
	defer func() { metrics.RecordDBQuery("cache_get", time.Since(start)) }()

	var (
		value []byte
		found bool
	)
	err := retry.WithBackoff(ctx, repo.retry, func() error {
		var err error
		value, found, err = repo.db.QueryBytes(ctx, query, key)
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("Get: %w", err)
	}
	return value, found, nil
}

func (repo *CacheRepo) Set(ctx context.Context, key string, value []byte) error {
	const query = `
INSERT INTO cache_entries (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	start := time.Now()
	defer func() { metrics.RecordDBQuery("cache_set", time.Since(start)) }()

	err := retry.WithBackoff(ctx, repo.retry, func() error {
		_, err := repo.db.Exec(ctx, query, key, value)
		return err
	})
	if err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	return nil
}

// Ping reports database reachability for readiness probes.
func (repo *CacheRepo) Ping(ctx context.Context) error {
	return repo.db.Ping(ctx)
}
