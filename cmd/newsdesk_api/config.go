package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/newsdesk/internal/meta"
	"github.com/DjordjeVuckovic/newsdesk/internal/preview"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/factory"
	"github.com/DjordjeVuckovic/newsdesk/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("APP_ENV"),
	}
}

type NewsdeskConfig struct {
	StorageConfig factory.StorageConfig
	MetaConfig    meta.Config
	PreviewConfig preview.Config

	AdminAPIKey      string
	RequirePublished bool
}

func (as *AppConfig) Load() (*NewsdeskConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/newsdesk_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	metaCfg, err := meta.LoadConfig()
	if err != nil {
		slog.Error("Failed to load site configuration from environment", "error", err)
		return nil, err
	}

	previewCfg, err := preview.LoadConfig(metaCfg.SiteName)
	if err != nil {
		slog.Error("Failed to load preview configuration from environment", "error", err)
		return nil, err
	}

	return &NewsdeskConfig{
		StorageConfig:    *storageCfg,
		MetaConfig:       *metaCfg,
		PreviewConfig:    *previewCfg,
		AdminAPIKey:      os.Getenv("ADMIN_API_KEY"),
		RequirePublished: os.Getenv("PREVIEW_REQUIRE_PUBLISHED") == "true",
	}, nil
}
