package repository

import "context"

// CacheRepository is the key-value storage collaborator used by the fetch
// orchestrator. Values are opaque bytes; the repository applies no schema.
//
// Get returns (value, true, nil) on hit and (nil, false, nil) on miss.
// Set overwrites any previous value for key (last write wins).
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// PingableRepository is implemented by repositories backed by a remote store
// that can report its reachability for health checks.
type PingableRepository interface {
	Ping(ctx context.Context) error
}
