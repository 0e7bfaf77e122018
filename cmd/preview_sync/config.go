package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/newsdesk/internal/storage/factory"
	"github.com/DjordjeVuckovic/newsdesk/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("APP_ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type PreviewSyncConfig struct {
	BatchSize int
	PageSize  int
	factory.StorageConfig
}

func (as *AppConfig) Load() (*PreviewSyncConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/preview_sync/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}
	if storageCfg.Es == nil {
		return nil, fmt.Errorf("PREVIEW_SOURCE=es with ES_ADDRESSES and ES_INDEX_NAME is required to sync the preview index")
	}

	batchSize, err := strconv.Atoi(os.Getenv("SYNC_BATCH_SIZE"))
	if err != nil {
		batchSize = 500
	}
	pageSize, err := strconv.Atoi(os.Getenv("SYNC_PAGE_SIZE"))
	if err != nil {
		pageSize = 100
	}

	return &PreviewSyncConfig{
		BatchSize:     batchSize,
		PageSize:      pageSize,
		StorageConfig: *storageCfg,
	}, nil
}
