package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"newtab-feed/internal/app"
	"newtab-feed/internal/config"
	hhttp "newtab-feed/internal/handler/http"
	"newtab-feed/internal/handler/http/middleware"
	"newtab-feed/internal/handler/http/requestid"
	hwidget "newtab-feed/internal/handler/http/widget"
	"newtab-feed/internal/infra/db"
	"newtab-feed/internal/observability/logging"
	"newtab-feed/internal/observability/slo"
	"newtab-feed/internal/observability/tracing"
	envcfg "newtab-feed/internal/pkg/config"

	_ "newtab-feed/docs" // swagger docs
)

// @title           newtab-feed API
// @version         1.0
// @description     新しいタブページ向けのデータ集約API。
// @description     各エンドポイントは上流が全滅してもキャッシュまたは予備データで応答します。

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

const poolStatsInterval = 30 * time.Second

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadAppConfig(logger, envcfg.NewConfigMetrics("api"))

	shutdownTracing := tracing.Init(cfg.TraceSampleRatio)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("failed to shut down tracer", slog.Any("error", err))
		}
	}()

	components, err := app.Build(cfg, logger, app.Options{Migrate: true})
	if err != nil {
		logger.Error("failed to build widget service", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := components.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler, err := setupHandler(logger, cfg, components)
	if err != nil {
		logger.Error("failed to set up handler", slog.Any("error", err))
		os.Exit(1)
	}

	go slo.NewTracker(prometheus.DefaultGatherer).Run(ctx, cfg.SLOInterval, logger)
	if components.DB != nil {
		go reportPoolStats(ctx, components.DB)
	}

	runServer(ctx, logger, cfg, handler)
}

// setupHandler registers the routes and wraps them in the middleware chain.
// Middleware order: Recover → Request ID → Tracing → Logging → Metrics →
// Security headers → CORS → Client IP → Input validation → Timeout.
func setupHandler(logger *slog.Logger, cfg config.AppConfig, c *app.Components) (http.Handler, error) {
	corsConfig, err := middleware.LoadCORSConfig()
	if err != nil {
		return nil, err
	}
	corsConfig.Logger = logger

	proxyConfig, err := middleware.LoadTrustedProxyConfig()
	if err != nil {
		return nil, err
	}
	if proxyConfig.Enabled {
		logger.Info("client ip: trusted proxy mode enabled",
			slog.Int("trusted_proxies_count", len(proxyConfig.AllowedCIDRs)))
	} else {
		logger.Info("client ip: using RemoteAddr, proxy headers ignored")
	}

	mux := http.NewServeMux()
	hwidget.Register(mux, c.Service, logger)

	// ヘルスチェック・メトリクス
	mux.Handle("/health", &hhttp.HealthHandler{
		Store:   c.Store,
		DB:      c.DB,
		Breaker: c.Fetcher,
		Version: cfg.Version,
		Logger:  logger,
	})
	mux.Handle("/ready", &hhttp.ReadyHandler{Store: c.Store})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return hhttp.Chain(mux,
		hhttp.Recover(logger),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		hhttp.SecurityHeaders(),
		middleware.CORS(corsConfig),
		middleware.ClientIP(middleware.NewIPExtractor(proxyConfig)),
		hhttp.InputValidation(),
		hhttp.Timeout(cfg.RequestTimeout),
	), nil
}

// reportPoolStats refreshes the DB pool gauges until ctx is done.
func reportPoolStats(ctx context.Context, database *sql.DB) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			db.ReportPoolStats(database)
		}
	}
}

// runServer serves until ctx is cancelled, then drains in-flight requests
// for up to ShutdownTimeout.
func runServer(ctx context.Context, logger *slog.Logger, cfg config.AppConfig, handler http.Handler) {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", cfg.Addr), slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			return
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down server", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		return
	}
	logger.Info("server stopped")
}
