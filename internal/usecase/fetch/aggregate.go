package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"newtab-feed/internal/observability/metrics"

	"golang.org/x/sync/errgroup"
)

// Source is one branch of a parallel aggregation: an ordered provider chain
// producing a list, and a backup list used when the chain fails or yields
// nothing.
type Source[T any] struct {
	Name      string
	Providers []Provider[[]T]
	Backup    func() []T
	// Limit truncates the list; zero or negative keeps everything.
	Limit int
}

// Aggregate runs every source concurrently and returns one list per source
// name. A failed source gets its own backup and never affects the others.
// Wall time is bounded by the slowest single chain, not the sum.
func Aggregate[T any](ctx context.Context, o *Orchestrator, kind Kind, sources []Source[T]) map[string][]T {
	out, _ := aggregate(ctx, o, kind, sources)
	return out
}

func aggregate[T any](ctx context.Context, o *Orchestrator, kind Kind, sources []Source[T]) (map[string][]T, int) {
	out := make(map[string][]T, len(sources))
	var (
		mu        sync.Mutex
		succeeded int
		g         errgroup.Group
	)

	for _, src := range sources {
		g.Go(func() error {
			items, _, err := firstSuccess(ctx, o, string(kind), src.Providers, func(v []T) bool { return len(v) > 0 })
			origin := "provider"
			if err != nil {
				origin = "backup"
				items = nil
				if src.Backup != nil {
					items = src.Backup()
				}
				o.logger.Info("source using backup list",
					slog.String("kind", string(kind)),
					slog.String("source", src.Name),
					slog.Int("items", len(items)))
			}
			items = truncate(items, src.Limit)
			metrics.RecordAggregateSource(src.Name, origin)

			mu.Lock()
			out[src.Name] = items
			if err == nil {
				succeeded++
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out, succeeded
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return slices.Clone(items)
}

// AggregateProvider exposes an aggregation as a single provider so the
// aggregated map can be cached and resolved like any other kind.
// It fails only when every source fell back to its backup.
func AggregateProvider[T any](o *Orchestrator, kind Kind, name string, sources []Source[T]) Provider[map[string][]T] {
	return ProviderFunc[map[string][]T]{
		ProviderName:    name,
		ProviderTimeout: AggregateTimeout(sources),
		Func: func(ctx context.Context) (map[string][]T, error) {
			out, succeeded := aggregate(ctx, o, kind, sources)
			if succeeded == 0 && len(sources) > 0 {
				return nil, fmt.Errorf("%s: no source answered: %w", name, ErrExhausted)
			}
			return out, nil
		},
	}
}

// AggregateTimeout is the longest source chain plus a second of slack.
func AggregateTimeout[T any](sources []Source[T]) time.Duration {
	var longest time.Duration
	for _, src := range sources {
		longest = max(longest, ChainTimeout(src.Providers))
	}
	return longest + time.Second
}

// Backups collects every source's backup list, truncated to its limit.
func Backups[T any](sources []Source[T]) map[string][]T {
	out := make(map[string][]T, len(sources))
	for _, src := range sources {
		var items []T
		if src.Backup != nil {
			items = src.Backup()
		}
		out[src.Name] = truncate(items, src.Limit)
	}
	return out
}
