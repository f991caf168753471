// Package memory provides an in-process cache store for single-instance
// deployments and tests.
package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Default limits of NewCacheRepo. Location and weather entries are keyed
// per client IP and per coordinate, so the key space is open ended.
const (
	DefaultMaxEntries = 10000
	DefaultTTL        = 48 * time.Hour
)

// CacheRepo is a size-capped LRU whose entries also expire after a TTL.
// Values are copied on the way in and out so callers never share backing
// arrays with the store.
type CacheRepo struct {
	entries *expirable.LRU[string, []byte]
}

// NewCacheRepo creates an empty store with the default limits.
func NewCacheRepo() *CacheRepo {
	return NewCacheRepoWithLimits(DefaultMaxEntries, DefaultTTL)
}

// NewCacheRepoWithLimits creates an empty store holding at most maxEntries
// keys, each for at most ttl. The least recently used key is evicted first.
// Non-positive limits fall back to the defaults.
func NewCacheRepoWithLimits(maxEntries int, ttl time.Duration) *CacheRepo {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CacheRepo{entries: expirable.NewLRU[string, []byte](maxEntries, nil, ttl)}
}

func (r *CacheRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	v, ok := r.entries.Get(key)
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (r *CacheRepo) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.entries.Add(key, append([]byte(nil), value...))
	return nil
}

// Ping always succeeds.
func (r *CacheRepo) Ping(context.Context) error { return nil }

// Len returns the number of stored keys, including expired keys not yet
// swept.
func (r *CacheRepo) Len() int {
	return r.entries.Len()
}
