package worker

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"newtab-feed/internal/handler/http/respond"
	"newtab-feed/internal/infra/notifier"
	"newtab-feed/internal/usecase/fetch"
)

// Run statuses.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusFailure = "failure"
)

// originError labels a kind whose refresh returned an error.
const originError = "error"

// Refresher resolves one kind without a caller. widget.Service implements it.
type Refresher interface {
	Refresh(ctx context.Context, kind fetch.Kind, force bool) (fetch.Origin, error)
}

// Pruner deletes cache entries older than the given age.
type Pruner func(ctx context.Context, olderThan time.Duration) (int64, error)

// Stats summarizes one warm run.
type Stats struct {
	Kinds    int
	Origins  map[fetch.Origin]int
	Failed   int
	// Degraded lists, sorted, the kinds that failed or fell back.
	Degraded []string
	Pruned   int64
	Duration time.Duration
}

// Status classifies the run.
func (s Stats) Status() string {
	switch {
	case s.Failed == 0:
		return StatusSuccess
	case s.Failed < s.Kinds:
		return StatusPartial
	default:
		return StatusFailure
	}
}

// Warmer refreshes the cacheable kinds so page loads hit a warm cache.
type Warmer struct {
	refresher Refresher
	kinds     []fetch.Kind
	cfg       WorkerConfig
	metrics   *WorkerMetrics
	logger    *slog.Logger
	prune     Pruner
	notifier  notifier.Notifier

	mu       sync.Mutex
	degraded bool
}

// NewWarmer creates a Warmer. metrics and prune may be nil.
func NewWarmer(r Refresher, kinds []fetch.Kind, cfg WorkerConfig, metrics *WorkerMetrics, logger *slog.Logger, prune Pruner) *Warmer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Warmer{
		refresher: r,
		kinds:     kinds,
		cfg:       cfg,
		metrics:   metrics,
		logger:    logger,
		prune:     prune,
		notifier:  notifier.NoOp{},
	}
}

// SetNotifier sends an alert whenever warm health changes between healthy
// and degraded.
func (w *Warmer) SetNotifier(n notifier.Notifier) {
	if n == nil {
		n = notifier.NoOp{}
	}
	w.notifier = n
}

// Run refreshes every kind, at most WarmConcurrency at a time, then prunes
// old rows. A failing kind does not stop the others.
func (w *Warmer) Run(parent context.Context) Stats {
	start := time.Now()
	ctx, cancel := context.WithTimeout(parent, w.cfg.WarmTimeout)
	defer cancel()

	stats := Stats{Kinds: len(w.kinds), Origins: map[fetch.Origin]int{}}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.cfg.WarmConcurrency)
	for _, kind := range w.kinds {
		g.Go(func() error {
			origin, err := w.refresher.Refresh(gctx, kind, w.cfg.ForceRefresh)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				stats.Failed++
				stats.Degraded = append(stats.Degraded, string(kind))
				w.recordKind(kind, originError)
				w.logger.Warn("warm kind failed",
					slog.String("kind", string(kind)),
					slog.String("error", respond.SanitizeError(err)))
				return nil
			}
			stats.Origins[origin]++
			if origin == fetch.OriginFallback {
				stats.Degraded = append(stats.Degraded, string(kind))
			}
			w.recordKind(kind, string(origin))
			w.logger.Debug("warm kind done",
				slog.String("kind", string(kind)),
				slog.String("origin", string(origin)))
			return nil
		})
	}
	_ = g.Wait()
	slices.Sort(stats.Degraded)

	if w.prune != nil && w.cfg.PruneAfter > 0 {
		n, err := w.prune(ctx, w.cfg.PruneAfter)
		if err != nil {
			w.logger.Error("cache prune failed", slog.String("error", respond.SanitizeError(err)))
		} else {
			stats.Pruned = n
			if w.metrics != nil {
				w.metrics.RecordPruned(n)
			}
		}
	}

	stats.Duration = time.Since(start)
	if w.metrics != nil {
		w.metrics.RecordRun(stats.Status(), stats.Duration)
	}
	w.logger.Info("warm completed",
		slog.String("status", stats.Status()),
		slog.Int("kinds", stats.Kinds),
		slog.Int("from_cache", stats.Origins[fetch.OriginCache]),
		slog.Int("from_provider", stats.Origins[fetch.OriginProvider]),
		slog.Int("from_fallback", stats.Origins[fetch.OriginFallback]),
		slog.Int("failed", stats.Failed),
		slog.Int64("pruned", stats.Pruned),
		slog.Duration("duration", stats.Duration))

	w.notifyTransition(parent, stats, start)
	return stats
}

// notifyTransition alerts on the first degraded run and on the first
// healthy run after that.
func (w *Warmer) notifyTransition(ctx context.Context, stats Stats, at time.Time) {
	degraded := len(stats.Degraded) > 0

	w.mu.Lock()
	changed := degraded != w.degraded
	w.degraded = degraded
	w.mu.Unlock()
	if !changed {
		return
	}

	alert := notifier.Alert{
		Level:    notifier.LevelDegraded,
		Status:   stats.Status(),
		Degraded: stats.Degraded,
		Kinds:    stats.Kinds,
		Duration: stats.Duration,
		At:       at,
	}
	if !degraded {
		alert.Level = notifier.LevelRecovered
	}
	if err := w.notifier.Notify(ctx, alert); err != nil {
		w.logger.Error("warm alert failed", slog.String("error", respond.SanitizeError(err)))
	}
}

func (w *Warmer) recordKind(kind fetch.Kind, origin string) {
	if w.metrics != nil {
		w.metrics.RecordKind(string(kind), origin)
	}
}
