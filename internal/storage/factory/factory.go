package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/newsdesk/internal/storage"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/es"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/pg"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/rest"
	pkgserver "github.com/DjordjeVuckovic/newsdesk/pkg/server"
)

type Backend struct {
	Store   storage.Store
	Preview storage.ArticleReader
	Health  pkgserver.HealthChecker

	closers []func()
}

func (b *Backend) Close() {
	for _, c := range b.closers {
		c()
	}
}

// NewBackend builds the article store described by cfg. Missing credentials
// produce an Unconfigured store, not an error.
func NewBackend(ctx context.Context, cfg *StorageConfig) (*Backend, error) {
	b := &Backend{}

	if cfg.Missing != "" {
		slog.Warn("Article store is not configured, data routes will fail", "reason", cfg.Missing)
		u := storage.NewUnconfigured(cfg.Missing)
		b.Store, b.Preview, b.Health = u, u, u
		return b, nil
	}

	switch cfg.Type {
	case storage.REST:
		s, err := rest.NewStore(*cfg.Rest)
		if err != nil {
			return nil, fmt.Errorf("failed to create REST store: %w", err)
		}
		b.Store, b.Health = s, s

	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		s, err := pg.NewStore(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		b.Store, b.Health = s, s
		b.closers = append(b.closers, pool.Close)

	case storage.InMem:
		s := in_mem.NewInMemStore()
		b.Store, b.Health = s, s

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}

	b.Preview = b.Store
	if cfg.PreviewSource == storage.ES {
		idx, err := es.NewArticleIndex(*cfg.Es)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.Preview = idx
		slog.Info("Preview routes read from Elasticsearch", "index", cfg.Es.IndexName)
	}

	slog.Info("Article store ready", "type", cfg.Type)
	return b, nil
}
