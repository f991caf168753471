package circuitbreaker

import (
	"context"
	"database/sql"
	"time"

	"github.com/sony/gobreaker"
)

// DBBreaker guards the cache store's connection pool. While it is open,
// calls fail fast with ErrOpenState and the orchestrator serves from
// providers or fallback data without waiting on a dead database.
type DBBreaker struct {
	cb *CircuitBreaker
	db *sql.DB
}

// DBConfig opens after five straight failures and probes again after 30s.
// A caller cancelling is not held against the database.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
		IsSuccessful:     succeededOrCanceled,
	}
}

// NewDBBreaker wraps db. Use DBConfig unless a test needs other thresholds.
func NewDBBreaker(db *sql.DB, cfg Config) *DBBreaker {
	return &DBBreaker{cb: New(cfg), db: db}
}

// QueryBytes runs a query selecting one bytea column and returns the first
// row's value. found is false when no row matches; a miss is a success.
func (b *DBBreaker) QueryBytes(ctx context.Context, query string, args ...any) (value []byte, found bool, err error) {
	_, err = b.cb.Execute(func() (interface{}, error) {
		rows, err := b.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		defer func() { _ = rows.Close() }()

		if rows.Next() {
			if err := rows.Scan(&value); err != nil {
				return nil, err
			}
			found = true
		}
		return nil, rows.Err()
	})
	if err != nil {
		return nil, false, err
	}
	return value, found, nil
}

// Exec runs a statement and returns the number of affected rows.
func (b *DBBreaker) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		r, err := b.db.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		return r.RowsAffected()
	})
	if err != nil {
		return 0, err
	}
	return res.(int64), nil
}

// Ping checks connectivity. An open circuit reports not-ready at once.
func (b *DBBreaker) Ping(ctx context.Context) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.db.PingContext(ctx)
	})
	return err
}

func (b *DBBreaker) State() gobreaker.State { return b.cb.State() }

func (b *DBBreaker) IsOpen() bool { return b.cb.IsOpen() }
