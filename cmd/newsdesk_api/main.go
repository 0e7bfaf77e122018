// Package main Newsdesk API
// @title Newsdesk API
// @version 1.0
// @description Social share previews and reader feed for the newsroom site
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"net/http"
	"os"

	_ "github.com/DjordjeVuckovic/newsdesk/docs"
	"github.com/DjordjeVuckovic/newsdesk/internal/api/router"
	"github.com/DjordjeVuckovic/newsdesk/internal/api/server"
	"github.com/DjordjeVuckovic/newsdesk/internal/bot"
	"github.com/DjordjeVuckovic/newsdesk/internal/catalog"
	"github.com/DjordjeVuckovic/newsdesk/internal/meta"
	"github.com/DjordjeVuckovic/newsdesk/internal/preview"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/newsdesk/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	// Health checks run before the backend exists, so the checker is swapped in below.
	health := &pkgserver.AllHealthy{}

	s := server.New(sCfg, health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Newsdesk API is running")
	})

	backend, err := factory.NewBackend(s.Context(), &cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create article store", "error", err)
		os.Exit(1)
		return
	}
	defer backend.Close()
	*health = append(*health, backend.Health)

	categories, err := catalog.Embedded()
	if err != nil {
		slog.Error("Failed to load category catalog", "error", err)
		os.Exit(1)
		return
	}

	composer := meta.NewComposer(cfg.MetaConfig)
	compositor := preview.NewCompositor(
		preview.NewHTTPFetcher(preview.WithTimeout(cfg.PreviewConfig.FetchTimeout)),
		composer,
		categories,
		cfg.PreviewConfig.Branding,
	)

	previewRouter := router.NewPreviewRouter(s.Echo, backend.Preview, bot.Default(), composer, compositor,
		router.WithRequirePublished(cfg.RequirePublished))
	previewRouter.Bind()

	var feedOpts []router.FeedOption
	if cfg.AdminAPIKey != "" {
		feedOpts = append(feedOpts, router.WithAdminKey(cfg.AdminAPIKey))
		slog.Info("Ad management enabled")
	} else {
		slog.Info("Ad management disabled, ADMIN_API_KEY is not set")
	}
	feedRouter := router.NewFeedRouter(s.Echo, backend.Store, categories, feedOpts...)
	feedRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		backend.Close()
		os.Exit(1)
	}
}
