package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/salon-pay/salon_pay/internal/config"
	"github.com/salon-pay/salon_pay/internal/currency"
	"github.com/salon-pay/salon_pay/internal/infra"
	"github.com/salon-pay/salon_pay/internal/logging"
	"github.com/salon-pay/salon_pay/internal/metrics"
	"github.com/salon-pay/salon_pay/internal/rates"
	"github.com/salon-pay/salon_pay/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var db *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		db, err = infra.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("connect postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
	} else if !cfg.IsDev() {
		logger.Error("DATABASE_URL must be set outside development")
		os.Exit(1)
	}

	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = infra.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("connect redis", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := cache.Close(); err != nil {
				logger.Warn("close redis", "error", err)
			}
		}()
	} else if !cfg.IsDev() {
		logger.Error("REDIS_URL must be set outside development")
		os.Exit(1)
	}

	var provider rates.Provider
	if cfg.RateProviderURL != "" {
		provider = rates.NewHTTPProvider(cfg.RateProviderURL, cfg.BaseCurrency)
	} else {
		logger.Warn("no rate provider configured, serving the built-in rate table")
		provider = staticFallbackProvider{}
	}

	rateSvc := rates.New(provider, cache, logger, cfg.RateRefreshInterval)
	go rateSvc.Run(ctx)

	metricsSrv := metrics.Serve(cfg.MetricsAddress(), logger)
	defer func() {
		if err := metricsSrv.Shutdown(context.Background()); err != nil {
			logger.Warn("metrics shutdown", "error", err)
		}
	}()

	srv, err := server.New(cfg, db, cache, rateSvc, logger)
	if err != nil {
		logger.Error("build server", "error", err)
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.Listen()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-srvErrCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownPeriod)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited cleanly")
}

// staticFallbackProvider serves the built-in snapshot when no upstream rate
// provider is configured, keeping refreshes trivially successful.
type staticFallbackProvider struct{}

func (staticFallbackProvider) Fetch(context.Context) (currency.Table, error) {
	return currency.Fallback(), nil
}
