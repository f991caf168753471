package fetch_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	fetchUC "newtab-feed/internal/usecase/fetch"
)

/* ───────── モック実装 ───────── */

// stubRepo はCacheRepositoryのインメモリモック
type stubRepo struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
	setErr error
	gets   int
	sets   int
}

func newStubRepo() *stubRepo {
	return &stubRepo{data: make(map[string][]byte)}
}

func (r *stubRepo) Get(_ context.Context, key string) ([]byte, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gets++
	if r.getErr != nil {
		return nil, false, r.getErr
	}
	v, ok := r.data[key]
	return v, ok, nil
}

func (r *stubRepo) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets++
	if r.setErr != nil {
		return r.setErr
	}
	r.data[key] = append([]byte(nil), value...)
	return nil
}

func (r *stubRepo) setCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sets
}

// stubProvider は呼び出し回数を記録するProviderモック
type stubProvider[T any] struct {
	name    string
	timeout time.Duration
	value   T
	err     error
	delay   time.Duration
	// ignoreCtx makes the stub sleep through cancellation.
	ignoreCtx bool
	calls     atomic.Int32
}

func (p *stubProvider[T]) Name() string           { return p.name }
func (p *stubProvider[T]) Timeout() time.Duration { return p.timeout }

func (p *stubProvider[T]) Fetch(ctx context.Context) (T, error) {
	p.calls.Add(1)
	var zero T
	if p.delay > 0 {
		if p.ignoreCtx {
			time.Sleep(p.delay)
		} else {
			select {
			case <-time.After(p.delay):
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}
	}
	if p.err != nil {
		return zero, p.err
	}
	return p.value, nil
}

// fakeClock は手動で進められる時計
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestOrchestrator(repo *stubRepo, fc *fakeClock) *fetchUC.Orchestrator {
	return fetchUC.NewOrchestrator(repo, fetchUC.NewClock(time.UTC, fc.Now), nil)
}

var errBoom = errors.New("boom")
