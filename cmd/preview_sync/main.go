package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/newsdesk/internal/collector"
	"github.com/DjordjeVuckovic/newsdesk/internal/processor"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/es"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/factory"
)

// preview_sync copies published articles from the primary store into the
// Elasticsearch index that preview routes read when PREVIEW_SOURCE=es.
func main() {
	appSettings := NewAppConfig()

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	backend, err := factory.NewBackend(ctx, &cfg.StorageConfig)
	if err != nil {
		slog.Error("failed to create article store", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	index, err := es.NewArticleIndex(*cfg.Es)
	if err != nil {
		slog.Error("failed to create preview index client", "error", err)
		os.Exit(1)
	}
	if err := index.EnsureIndex(ctx); err != nil {
		slog.Error("failed to prepare preview index", "error", err)
		os.Exit(1)
	}

	source := collector.NewStoreCollector(backend.Store, collector.WithPageSize(cfg.PageSize))
	pipeline := processor.NewSyncPipeline(source, index, processor.WithBatchSize(cfg.BatchSize))

	stats, err := pipeline.Run(ctx)
	if err != nil {
		slog.Error("failed to run pipeline", "error", err, "saved", stats.Saved)
		os.Exit(1)
	}
	if stats.Failed > 0 {
		slog.Error("some articles were not indexed", "failed", stats.Failed, "saved", stats.Saved)
		os.Exit(1)
	}
}
