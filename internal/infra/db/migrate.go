package db

import (
	"context"
	"database/sql"
	"time"
)

// MigrateUp creates the cache schema. It is idempotent.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS cache_entries (
    key        TEXT PRIMARY KEY,
    value      JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	// 古いエントリの掃除用
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_cache_entries_updated_at ON cache_entries(updated_at)`); err != nil {
		return err
	}

	return nil
}

// MigrateDown drops the cache schema. Every cached entry is lost; the next
// request for each kind refetches from its providers.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_cache_entries_updated_at`,
		`DROP TABLE IF EXISTS cache_entries`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// PruneEntries deletes entries not written for longer than olderThan and
// returns how many were removed. Keys for scopes nobody requests any more
// (old coordinates, retired wallpaper sources) otherwise live forever.
func PruneEntries(ctx context.Context, db *sql.DB, olderThan time.Duration) (int64, error) {
	res, err := db.ExecContext(ctx,
		`DELETE FROM cache_entries WHERE updated_at < now() - make_interval(secs => $1)`,
		olderThan.Seconds())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
