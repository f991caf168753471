package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"newtab-feed/internal/app"
	"newtab-feed/internal/config"
	"newtab-feed/internal/infra/db"
	"newtab-feed/internal/infra/notifier"
	workerPkg "newtab-feed/internal/infra/worker"
	"newtab-feed/internal/observability/logging"
	envcfg "newtab-feed/internal/pkg/config"
	"newtab-feed/internal/usecase/widget"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 設定読み込み（fail-open）
	workerMetrics := workerPkg.NewWorkerMetrics()
	workerConfig := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	appConfig := config.LoadAppConfig(logger, envcfg.NewConfigMetrics("app"))
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("warm_timeout", workerConfig.WarmTimeout),
		slog.Int("warm_concurrency", workerConfig.WarmConcurrency),
		slog.Bool("force_refresh", workerConfig.ForceRefresh),
		slog.Duration("prune_after", workerConfig.PruneAfter),
		slog.Int("health_port", workerConfig.HealthPort))

	if err := requireSharedStore(appConfig); err != nil {
		logger.Error("worker cannot start", slog.Any("error", err))
		os.Exit(1)
	}

	components, err := app.Build(appConfig, logger, app.Options{Migrate: true})
	if err != nil {
		logger.Error("failed to build widget service", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := components.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	startMetricsServer(ctx, logger, workerConfig.MetricsPort, components.Fetcher)

	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	prune := func(ctx context.Context, olderThan time.Duration) (int64, error) {
		return db.PruneEntries(ctx, components.DB, olderThan)
	}
	warmer := workerPkg.NewWarmer(components.Service, widget.WarmKinds, workerConfig, workerMetrics, logger, prune)
	warmer.SetNotifier(notifier.New(notifier.LoadConfigFromEnv(logger, envcfg.NewConfigMetrics("notifier")), logger))

	runCron(ctx, logger, warmer, workerConfig, healthServer)
}

// requireSharedStore rejects configurations without DATABASE_URL. The
// worker warms the cache the API reads, which only works through a store
// both processes share.
func requireSharedStore(cfg config.AppConfig) error {
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required: an in-memory cache is not shared with the API")
	}
	return nil
}

// runCron warms once at startup, then on every tick of the schedule until
// ctx is cancelled. A run still in progress when the next tick fires is
// not overlapped.
func runCron(ctx context.Context, logger *slog.Logger, warmer *workerPkg.Warmer, cfg workerPkg.WorkerConfig, healthServer *workerPkg.HealthServer) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	run := func() {
		start := time.Now()
		healthServer.RecordRun(warmer.Run(ctx), start)
	}
	if _, err := c.AddFunc(cfg.CronSchedule, run); err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}

	run()
	c.Start()
	healthServer.SetReady(true)
	logger.Info("worker started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", loc.String()))

	<-ctx.Done()
	healthServer.SetReady(false)
	logger.Info("worker shutting down")
	<-c.Stop().Done()
	logger.Info("worker stopped")
}
