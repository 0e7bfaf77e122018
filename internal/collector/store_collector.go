package collector

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage"
	"github.com/DjordjeVuckovic/newsdesk/pkg/pagination"
)

// StoreCollector streams every published article of a store, page by page.
type StoreCollector struct {
	reader   storage.FeedReader
	filter   domain.ArticleFilter
	pageSize int
}

type StoreCollectorOption func(*StoreCollector)

func WithPageSize(size int) StoreCollectorOption {
	return func(c *StoreCollector) {
		c.pageSize = size
	}
}

func WithFilter(filter domain.ArticleFilter) StoreCollectorOption {
	return func(c *StoreCollector) {
		c.filter = filter
	}
}

func NewStoreCollector(reader storage.FeedReader, opts ...StoreCollectorOption) *StoreCollector {
	c := &StoreCollector{
		reader:   reader,
		pageSize: pagination.PageMaxSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect stops at the first page error, which is sent on the channel.
func (sc *StoreCollector) Collect(ctx context.Context) (<-chan Result[domain.Article], error) {
	results := make(chan Result[domain.Article])

	go func() {
		defer close(results)

		page := pagination.OffsetRequest{Page: 1, Size: sc.pageSize}
		_ = page.Validate()

		for {
			res, err := sc.reader.ListPublished(ctx, sc.filter, page)
			if err != nil {
				select {
				case results <- Result[domain.Article]{Err: err}:
				case <-ctx.Done():
				}
				return
			}

			for _, article := range res.Items {
				select {
				case results <- Result[domain.Article]{Result: article}:
				case <-ctx.Done():
					return
				}
			}

			if !res.HasMore || len(res.Items) == 0 {
				slog.Info("Store collection finished", "pages", page.Page, "total", res.Total)
				return
			}
			page.Page++
		}
	}()

	return results, nil
}
