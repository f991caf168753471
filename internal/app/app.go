// Package app assembles the widget service and its collaborators from
// configuration. Both the API server and the cache-warming worker start
// from Build.
package app

import (
	"database/sql"
	"fmt"
	"log/slog"

	"newtab-feed/internal/config"
	"newtab-feed/internal/infra/adapter/persistence/memory"
	"newtab-feed/internal/infra/adapter/persistence/postgres"
	"newtab-feed/internal/infra/db"
	"newtab-feed/internal/infra/fetcher"
	"newtab-feed/internal/infra/provider"
	"newtab-feed/internal/repository"
	"newtab-feed/internal/usecase/fetch"
	"newtab-feed/internal/usecase/widget"
)

// Store is what the orchestrator and the health checks need from a cache
// backend.
type Store interface {
	repository.CacheRepository
	repository.PingableRepository
}

// Components are the wired collaborators.
type Components struct {
	Service  *widget.Service
	Store    Store
	DB       *sql.DB // nil when the cache lives in memory
	Fetcher  *fetcher.Client
	Clock    *fetch.ZoneClock
	Registry provider.Registry
}

// Options tune Build.
type Options struct {
	// Migrate creates the cache schema on startup.
	Migrate bool
}

// Build wires the service from cfg. An empty DatabaseURL keeps the cache in
// memory.
func Build(cfg config.AppConfig, logger *slog.Logger, opts Options) (*Components, error) {
	if logger == nil {
		logger = slog.Default()
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	registry := provider.Defaults()
	var svcOpts []widget.Option
	if cfg.SourcesFile != "" {
		sources, err := config.LoadSources(cfg.SourcesFile)
		if err != nil {
			return nil, err
		}
		if err := sources.Apply(registry); err != nil {
			return nil, fmt.Errorf("apply sources file: %w", err)
		}
		if svcOpts, err = sources.Options(); err != nil {
			return nil, fmt.Errorf("apply sources file: %w", err)
		}
		logger.Info("sources file applied",
			slog.String("path", cfg.SourcesFile),
			slog.Int("provider_overrides", len(sources.Providers)),
			slog.Int("freshness_overrides", len(sources.Freshness)))
	}

	fetchCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("fetcher config: %w", err)
	}
	client := fetcher.NewClient(fetchCfg, nil)

	c := &Components{
		Fetcher:  client,
		Clock:    fetch.NewClock(loc, nil),
		Registry: registry,
	}

	if cfg.DatabaseURL == "" {
		c.Store = memory.NewCacheRepoWithLimits(cfg.CacheMaxEntries, cfg.CacheTTL)
		logger.Info("cache store: memory",
			slog.Int("max_entries", cfg.CacheMaxEntries),
			slog.Duration("ttl", cfg.CacheTTL))
	} else {
		database, err := db.Open(cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		if opts.Migrate {
			if err := db.MigrateUp(database); err != nil {
				_ = database.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		c.DB = database
		c.Store = postgres.NewCacheRepo(database)
		logger.Info("cache store: postgres")
	}

	orch := fetch.NewOrchestrator(c.Store, c.Clock, logger)
	c.Service = widget.NewService(orch, provider.NewSet(client, registry), svcOpts...)

	logger.Info("widget service ready",
		slog.String("timezone", loc.String()),
		slog.Int("providers", len(registry)))
	return c, nil
}

// Close releases the database pool, if any.
func (c *Components) Close() error {
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
