package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/handlers"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/migrations"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/repository"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/server"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	defer logger.Sync()

	db, err := repository.OpenPostgres(cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migrations.NewMigrator(db, logger).Run(context.Background()); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	cacheStore := newCacheStore(cfg, logger)

	coordinator := cache.NewCoordinator(cacheStore, logger)
	stores := repository.NewPostgresStores(db, logger)
	repos := repository.New(stores, cacheStore, coordinator, logger)

	// Caching of the order-derived aggregates (revenue, sales counters)
	// can be toggled independently of the catalog cache.
	if !cfg.Features.EnableRevenueCache {
		repos.Revenue = repository.NewCachedRevenueRepo(stores.Revenue, cache.NewNoopStore(), coordinator, logger)
		repos.Sales = repository.NewCachedSalesRepo(stores.Sales, cache.NewNoopStore(), coordinator, logger)
	}

	h := handlers.NewHandlers(repos, cacheStore, cfg, logger)
	srv := server.New(h, cfg, logger)

	go func() {
		logger.Info("server starting",
			zap.Int("port", cfg.Server.Port),
			zap.Bool("catalog_cache", cfg.Features.EnableCatalogCache),
			zap.Bool("revenue_cache", cfg.Features.EnableRevenueCache),
		)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}

	if closer, ok := cacheStore.(*cache.RedisStore); ok {
		if err := closer.Close(); err != nil {
			logger.Warn("failed to close cache connection", zap.Error(err))
		}
	}

	logger.Info("server exited")
}

func newLogger(cfg *config.Config) *zap.Logger {
	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	if cfg.Features.EnableDebugMode {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	return logger.Named(cfg.ServiceName)
}

func newCacheStore(cfg *config.Config, logger *zap.Logger) cache.Store {
	if !cfg.Features.EnableCatalogCache {
		logger.Warn("catalog cache disabled, all reads go to the database")
		return cache.NewNoopStore()
	}
	return cache.NewRedisStore(cfg.Redis, logger)
}
