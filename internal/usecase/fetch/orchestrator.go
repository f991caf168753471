package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"newtab-feed/internal/observability/metrics"
	"newtab-feed/internal/observability/tracing"
	"newtab-feed/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// Origin tells where a resolved value came from.
type Origin string

const (
	OriginCache    Origin = "cache"
	OriginProvider Origin = "provider"
	OriginFallback Origin = "fallback"
)

// FallbackInput is handed to a policy's fallback supplier.
type FallbackInput struct {
	Force   bool
	DateKey string
	Now     time.Time
}

// Policy binds a kind to its providers, fallback supplier and freshness rule.
type Policy[T any] struct {
	Kind Kind
	// Scope narrows the cache key, e.g. rounded coordinates for weather.
	Scope     []string
	Providers []Provider[T]
	// Fallback must always return a usable value.
	Fallback func(in FallbackInput) T
	// Freshness defaults to DefaultFreshness(Kind) when nil.
	Freshness Freshness
}

// Result is a resolved value plus its provenance.
type Result[T any] struct {
	Value     T
	Origin    Origin
	Provider  string
	FetchedAt time.Time
}

// Orchestrator holds the collaborators shared by every resolution:
// the cache store, the clock and the logger.
type Orchestrator struct {
	repo   repository.CacheRepository
	clock  Clock
	logger *slog.Logger
}

// NewOrchestrator creates an orchestrator.
// A nil clock means UTC wall time; a nil logger means slog.Default().
func NewOrchestrator(repo repository.CacheRepository, clock Clock, logger *slog.Logger) *Orchestrator {
	if clock == nil {
		clock = NewClock(nil, nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{repo: repo, clock: clock, logger: logger}
}

// Clock returns the orchestrator's clock.
func (o *Orchestrator) Clock() Clock { return o.clock }

// FetchWithFallback resolves a value for p and returns only the value.
// It never fails: when the cache is stale and every provider fails, the
// policy's fallback supplies the answer.
func FetchWithFallback[T any](ctx context.Context, o *Orchestrator, p Policy[T], force bool) T {
	return Resolve(ctx, o, p, force).Value
}

// Resolve is FetchWithFallback with provenance.
//
// Unless force is set, a fresh cache entry is returned without invoking any
// provider. Otherwise providers are tried in order, each bounded by its own
// timeout, and the first success wins. If none succeeds the fallback is used.
// Every non-cache resolution writes exactly one cache entry whose fetched_at
// never moves backwards.
func Resolve[T any](ctx context.Context, o *Orchestrator, p Policy[T], force bool) Result[T] {
	start := time.Now()
	kind := string(p.Kind)
	key := p.Kind.CacheKey(p.Scope...)

	ctx, span := tracing.GetTracer().Start(ctx, "fetch.Resolve")
	defer span.End()
	span.SetAttributes(
		attribute.String("fetch.kind", kind),
		attribute.String("fetch.key", key),
		attribute.Bool("fetch.force", force),
	)

	freshness := p.Freshness
	if freshness == nil {
		freshness = DefaultFreshness(p.Kind)
	}

	now := o.clock.Now()
	prev, hasPrev := o.readEntry(ctx, kind, key)

	if !force && hasPrev {
		if freshness.Fresh(prev, now, o.clock) {
			var cached T
			if err := json.Unmarshal(prev.Value, &cached); err == nil {
				metrics.RecordCacheLookup(kind, "hit")
				metrics.RecordResolve(kind, string(OriginCache), time.Since(start))
				span.SetAttributes(attribute.String("fetch.origin", string(OriginCache)))
				return Result[T]{Value: cached, Origin: OriginCache, FetchedAt: prev.FetchedTime()}
			}
			o.logger.Warn("cached value does not decode, refetching",
				slog.String("kind", kind),
				slog.String("key", key))
		}
		metrics.RecordCacheLookup(kind, "stale")
	}

	value, provider, err := firstSuccess(ctx, o, kind, p.Providers, nil)
	origin := OriginProvider
	if err != nil {
		origin = OriginFallback
		metrics.RecordFallback(kind)
		o.logger.Warn("all providers failed, using fallback",
			slog.String("kind", kind),
			slog.Int("providers", len(p.Providers)),
			slog.Any("error", err))
		if p.Fallback != nil {
			value = p.Fallback(FallbackInput{Force: force, DateKey: o.clock.DateKey(now), Now: now})
		}
	}

	fetchedAt := now
	if hasPrev && prev.FetchedTime().After(now) {
		fetchedAt = prev.FetchedTime()
	}
	o.writeEntry(context.WithoutCancel(ctx), kind, key, value, fetchedAt, o.clock.DateKey(now))

	metrics.RecordResolve(kind, string(origin), time.Since(start))
	span.SetAttributes(
		attribute.String("fetch.origin", string(origin)),
		attribute.String("fetch.provider", provider),
	)
	return Result[T]{Value: value, Origin: origin, Provider: provider, FetchedAt: fetchedAt}
}

// readEntry loads and decodes the entry under key. Any failure is a miss.
func (o *Orchestrator) readEntry(ctx context.Context, kind, key string) (Entry, bool) {
	if o.repo == nil {
		return Entry{}, false
	}
	data, found, err := o.repo.Get(ctx, key)
	if err != nil {
		metrics.RecordCacheLookup(kind, "error")
		o.logger.Warn("cache read failed",
			slog.String("kind", kind),
			slog.String("key", key),
			slog.Any("error", err))
		return Entry{}, false
	}
	if !found {
		metrics.RecordCacheLookup(kind, "miss")
		return Entry{}, false
	}
	e, err := decodeEntry(data)
	if err != nil {
		metrics.RecordCacheLookup(kind, "error")
		o.logger.Warn("cache entry is corrupt",
			slog.String("kind", kind),
			slog.String("key", key),
			slog.Any("error", err))
		return Entry{}, false
	}
	return e, true
}

func (o *Orchestrator) writeEntry(ctx context.Context, kind, key string, value any, fetchedAt time.Time, dateKey string) {
	if o.repo == nil {
		return
	}
	data, err := encodeEntry(value, fetchedAt, dateKey)
	if err == nil {
		err = o.repo.Set(ctx, key, data)
	}
	if err != nil {
		metrics.RecordCacheWriteError(kind)
		o.logger.Error("cache write failed",
			slog.String("kind", kind),
			slog.String("key", key),
			slog.Any("error", err))
	}
}

// firstSuccess tries providers in order and returns the first accepted value.
// A canceled caller context stops the loop before the next provider.
func firstSuccess[T any](ctx context.Context, o *Orchestrator, kind string, providers []Provider[T], accept func(T) bool) (T, string, error) {
	var zero T
	var errs []error
	for _, p := range providers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		callStart := time.Now()
		v, err := callProvider(ctx, p)
		if err == nil && accept != nil && !accept(v) {
			err = fmt.Errorf("%s: empty result: %w", p.Name(), ErrInvalidResponse)
		}
		class := Classify(err)
		metrics.RecordProviderAttempt(kind, p.Name(), class, time.Since(callStart))

		if err == nil {
			o.logger.Debug("provider succeeded",
				slog.String("kind", kind),
				slog.String("provider", p.Name()),
				slog.Duration("duration", time.Since(callStart)))
			return v, p.Name(), nil
		}
		o.logger.Warn("provider failed",
			slog.String("kind", kind),
			slog.String("provider", p.Name()),
			slog.String("class", class),
			slog.Any("error", err))
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return zero, "", ErrExhausted
	}
	return zero, "", fmt.Errorf("%w: %w", ErrExhausted, errors.Join(errs...))
}

type outcome[T any] struct {
	value T
	err   error
}

// callProvider runs one provider under its own timeout. The call returns
// when the deadline passes even if the provider ignores its context.
func callProvider[T any](ctx context.Context, p Provider[T]) (T, error) {
	var zero T
	callCtx, cancel := context.WithTimeout(ctx, p.Timeout())
	defer cancel()

	done := make(chan outcome[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome[T]{err: fmt.Errorf("%s: provider panic: %v: %w", p.Name(), r, ErrInvalidResponse)}
			}
		}()
		v, err := p.Fetch(callCtx)
		done <- outcome[T]{value: v, err: err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-callCtx.Done():
		if err := ctx.Err(); err != nil {
			return zero, fmt.Errorf("%s: %w", p.Name(), err)
		}
		return zero, fmt.Errorf("%s: %w", p.Name(), ErrTimeout)
	}
}
