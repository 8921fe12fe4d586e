package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vanshika/degrees/backend/internal/config"
	"github.com/vanshika/degrees/backend/internal/dataset"
	"github.com/vanshika/degrees/backend/internal/logging"
	"github.com/vanshika/degrees/backend/internal/metrics"
	"github.com/vanshika/degrees/backend/internal/search"
	"github.com/vanshika/degrees/backend/internal/server"
	"github.com/vanshika/degrees/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	policy, err := search.ParsePolicy(cfg.Search.Frontier)
	if err != nil {
		logger.Error("invalid search configuration", "error", err)
		os.Exit(1)
	}
	if policy != search.PolicyFIFO {
		logger.Warn("non-fifo frontier configured; paths are not guaranteed shortest", "policy", policy.String())
	}

	ds, stats, err := dataset.Load(cfg.Dataset.Dir, logger)
	if err != nil {
		logger.Error("failed to load dataset", "error", err, "dir", cfg.Dataset.Dir)
		os.Exit(1)
	}
	metrics.DatasetPeople.Set(float64(stats.People))
	metrics.DatasetMovies.Set(float64(stats.Movies))

	engine := search.New(ds, search.WithPolicy(policy))
	degreesService := service.NewDegreesService(ds, engine)
	apiHandlers := server.NewAPIHandlers(logger, degreesService)

	router := server.NewRouter(logger, server.RouterDependencies{
		Health:           server.DatasetHealthService{Dataset: ds},
		API:              apiHandlers,
		MetricsEnabled:   cfg.HTTP.MetricsEnabled,
		AllowedOrigins:   parseAllowedOrigins(cfg.HTTP.AllowedOriginsCSV),
		AllowCredentials: true,
	})

	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func parseAllowedOrigins(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	var origins []string
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		origins = append(origins, origin)
	}
	return origins
}
