package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	"github.com/DjordjeVuckovic/newsdesk/pkg/pagination"
)

// Unconfigured stands in for a store whose credentials are missing. Every
// call fails with ErrNotConfigured so the process keeps serving health checks.
type Unconfigured struct {
	Reason string
}

func NewUnconfigured(reason string) *Unconfigured {
	return &Unconfigured{Reason: reason}
}

func (u *Unconfigured) err() error {
	return fmt.Errorf("%w: %s", ErrNotConfigured, u.Reason)
}

func (u *Unconfigured) ArticleByID(context.Context, string) (*domain.Article, error) {
	return nil, u.err()
}

func (u *Unconfigured) ListPublished(context.Context, domain.ArticleFilter, pagination.OffsetRequest) (*pagination.OffsetResult[domain.Article], error) {
	return nil, u.err()
}

func (u *Unconfigured) LiveAds(context.Context, time.Time) ([]domain.Ad, error) {
	return nil, u.err()
}

func (u *Unconfigured) Categories(context.Context) ([]domain.Category, error) {
	return nil, u.err()
}

func (u *Unconfigured) IncrementViews(context.Context, string) (int64, error) {
	return 0, u.err()
}

func (u *Unconfigured) SwapAdPositions(context.Context, string, string) error {
	return u.err()
}

func (u *Unconfigured) Healthy(context.Context) bool {
	return false
}

// Ready returns the configuration error of an Unconfigured backend and nil
// for anything else.
func Ready(backend any) error {
	if u, ok := backend.(*Unconfigured); ok {
		return u.err()
	}
	return nil
}
