package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cashback-catalog-service/config"
	httpHandler "cashback-catalog-service/internal/adapter/http/handler"
	"cashback-catalog-service/internal/adapter/storage/csvfile"
	pgStorage "cashback-catalog-service/internal/adapter/storage/postgres"
	redisStorage "cashback-catalog-service/internal/adapter/storage/redis"
	"cashback-catalog-service/internal/core/ports"
	"cashback-catalog-service/internal/service"
	"cashback-catalog-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("driver", cfg.Storage.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting Cashback Catalog Service")

	ctx := context.Background()

	// Initialize storage backend
	var (
		merchantRepo   ports.MerchantRepository
		offerRepo      ports.OfferRepository
		healthCheckers []ports.HealthChecker
	)
	switch cfg.Storage.Driver {
	case "csv":
		if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
			log.Fatal().Err(err).Msg("Failed to create data directory")
		}
		merchantRepo = csvfile.NewMerchantRepo(cfg.Storage.DataDir)
		offerRepo = csvfile.NewOfferRepo(cfg.Storage.DataDir)
		healthCheckers = append(healthCheckers, csvfile.NewHealthCheck(cfg.Storage.DataDir))
		log.Info().Str("data_dir", cfg.Storage.DataDir).Msg("CSV storage ready")

	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		if err := pgStorage.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate catalog schema")
		}
		merchantRepo = pgStorage.NewMerchantRepo(pool)
		offerRepo = pgStorage.NewOfferRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
		log.Info().Msg("PostgreSQL storage ready")

	default:
		log.Fatal().Str("driver", cfg.Storage.Driver).Msg("Unknown storage driver")
	}

	// Optional Redis view cache
	var viewCache ports.OfferViewCache
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		viewCache = redisStorage.NewViewCache(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Initialize services
	catalogSvc := service.NewCatalogService(merchantRepo, offerRepo, viewCache, log)
	querySvc := service.NewCatalogQueryService(merchantRepo, offerRepo, viewCache, cfg.Storage.CacheTTL, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		QuerySvc:       querySvc,
		CatalogSvc:     catalogSvc,
		ViewCache:      viewCache,
		WebhookSecret:  cfg.Webhook.Secret,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
