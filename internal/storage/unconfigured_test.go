package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	"github.com/DjordjeVuckovic/newsdesk/pkg/pagination"
	"github.com/stretchr/testify/assert"
)

func TestUnconfigured_EveryCallFails(t *testing.T) {
	ctx := context.Background()
	u := NewUnconfigured("STORE_KEY is not set")

	_, err := u.ArticleByID(ctx, "a1")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, err.Error(), "STORE_KEY is not set")

	_, err = u.ListPublished(ctx, domain.ArticleFilter{}, pagination.OffsetRequest{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = u.LiveAds(ctx, time.Now())
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = u.Categories(ctx)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = u.IncrementViews(ctx, "a1")
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.ErrorIs(t, u.SwapAdPositions(ctx, "x", "y"), ErrNotConfigured)
	assert.False(t, u.Healthy(ctx))
}

type fakeReader struct{}

func (fakeReader) ArticleByID(context.Context, string) (*domain.Article, error) {
	return nil, errors.New("unused")
}

func TestReady(t *testing.T) {
	assert.ErrorIs(t, Ready(NewUnconfigured("missing")), ErrNotConfigured)
	assert.NoError(t, Ready(fakeReader{}))
	assert.NoError(t, Ready(nil))
}
