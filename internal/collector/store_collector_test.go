package collector

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, ch <-chan Result[domain.Article]) ([]string, []error) {
	t.Helper()
	var (
		ids  []string
		errs []error
	)
	for res := range ch {
		if res.Err != nil {
			errs = append(errs, res.Err)
			continue
		}
		ids = append(ids, res.Result.ID)
	}
	return ids, errs
}

func TestStoreCollector_Collect(t *testing.T) {
	store := in_mem.NewInMemStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 7 {
		published := base.Add(time.Duration(i) * time.Hour)
		store.PutArticle(domain.Article{ID: fmt.Sprintf("a%d", i), Category: "Cultura", PublishedAt: &published})
	}
	store.PutArticle(domain.Article{ID: "draft"})

	tests := []struct {
		name     string
		opts     []StoreCollectorOption
		expected int
	}{
		{name: "single page", expected: 7},
		{name: "several pages", opts: []StoreCollectorOption{WithPageSize(3)}, expected: 7},
		{name: "filtered", opts: []StoreCollectorOption{WithPageSize(2), WithFilter(domain.ArticleFilter{Category: "Deportes"})}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := NewStoreCollector(store, tt.opts...).Collect(context.Background())
			require.NoError(t, err)

			ids, errs := drain(t, ch)
			assert.Empty(t, errs)
			assert.Len(t, ids, tt.expected)
			assert.NotContains(t, ids, "draft")
		})
	}
}

func TestStoreCollector_PageError(t *testing.T) {
	ch, err := NewStoreCollector(storage.NewUnconfigured("no credentials")).Collect(context.Background())
	require.NoError(t, err)

	ids, errs := drain(t, ch)
	assert.Empty(t, ids)
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], storage.ErrNotConfigured))
}
