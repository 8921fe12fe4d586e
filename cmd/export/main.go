package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vanshika/degrees/backend/internal/config"
	"github.com/vanshika/degrees/backend/internal/dataset"
	"github.com/vanshika/degrees/backend/internal/export"
	"github.com/vanshika/degrees/backend/internal/graph"
	"github.com/vanshika/degrees/backend/internal/logging"
)

func main() {
	var (
		dataDir   = flag.String("data", "small", "directory containing people.csv, movies.csv and stars.csv")
		batchSize = flag.Int("batch-size", 500, "rows per graph write batch")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "export")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ds, stats, err := dataset.Load(*dataDir, logger)
	if err != nil {
		logger.Error("failed to load dataset", "error", err, "dir", *dataDir)
		os.Exit(1)
	}

	if cfg.Graph.URI == "" {
		logger.Error("GRAPH_URI is required for export")
		os.Exit(1)
	}

	client, err := graph.NewNeo4jClient(ctx, graph.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	})
	if err != nil {
		logger.Error("failed to create graph client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Close(context.Background()); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	exporter := export.New(client, *batchSize)

	start := time.Now()
	logger.Info("exporting dataset", "people", stats.People, "movies", stats.Movies, "stars", stats.Stars)
	if err := exporter.ExportDataset(ctx, ds); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}

	people, movies, err := exporter.CountExported(ctx)
	if err != nil {
		logger.Warn("post-export count failed", "error", err)
	} else {
		logger.Info("export verified", "people", people, "movies", movies)
	}

	logger.Info("export complete", "duration", time.Since(start).String())
}
