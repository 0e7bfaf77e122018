package storage

import (
	"context"
	"errors"
	"time"

	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	"github.com/DjordjeVuckovic/newsdesk/pkg/pagination"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrNotConfigured = errors.New("article store not configured")
)

// ArticleReader is the only capability the preview routes need.
type ArticleReader interface {
	// ArticleByID returns ErrNotFound when no row matches. Publish state is
	// not checked.
	ArticleByID(ctx context.Context, id string) (*domain.Article, error)
}

type FeedReader interface {
	// ListPublished returns published articles, newest first.
	ListPublished(ctx context.Context, filter domain.ArticleFilter, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Article], error)
	// LiveAds returns the ads visible at now ordered by position.
	LiveAds(ctx context.Context, now time.Time) ([]domain.Ad, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

type Writer interface {
	// IncrementViews bumps the view counter and returns the new value.
	// Concurrent increments may be lost on backends without atomic updates.
	IncrementViews(ctx context.Context, id string) (int64, error)
	// SwapAdPositions exchanges the position values of two ads.
	SwapAdPositions(ctx context.Context, first, second string) error
}

type Store interface {
	ArticleReader
	FeedReader
	Writer
}

type Type string

const (
	REST  Type = "rest"
	PG    Type = "pg"
	ES    Type = "es"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported store type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
