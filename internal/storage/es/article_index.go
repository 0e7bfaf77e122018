package es

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
)

// ArticleIndex mirrors articles into an Elasticsearch index so preview
// lookups do not hit the primary store.
type ArticleIndex struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewArticleIndex(config ClientConfig) (*ArticleIndex, error) {
	if len(config.Addresses) == 0 || config.IndexName == "" {
		return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses or index name is missing")
	}

	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &ArticleIndex{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

func (x *ArticleIndex) ArticleByID(ctx context.Context, id string) (*domain.Article, error) {
	res, err := x.client.Get(x.indexName, id).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusNotFound {
			return nil, storage.ErrNotFound
		}
		slog.Error("Elasticsearch get failed", "error", err, "id", id, "index", x.indexName)
		return nil, fmt.Errorf("failed to fetch article %s: %w", id, err)
	}
	if !res.Found || len(res.Source_) == 0 {
		return nil, storage.ErrNotFound
	}

	var article domain.Article
	if err := json.Unmarshal(res.Source_, &article); err != nil {
		return nil, fmt.Errorf("failed to unmarshal article document: %w", err)
	}
	if article.ID == "" {
		article.ID = id
	}
	return &article, nil
}

// Save indexes one article document under its id.
func (x *ArticleIndex) Save(ctx context.Context, article domain.Article, waitForRefresh bool) error {
	req := x.client.Index(x.indexName).Id(article.ID).Document(article)
	if waitForRefresh {
		req = req.Refresh(refresh.Waitfor)
	}

	res, err := req.Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index article %s: %w", article.ID, err)
	}

	slog.Debug("document indexed successfully", "id", article.ID, "index", x.indexName, "result", res.Result)
	return nil
}

// SaveBulk indexes articles through the bulk API. It fails when any item was rejected.
func (x *ArticleIndex) SaveBulk(ctx context.Context, articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         x.indexName,
		Client:        x.client,
		NumWorkers:    2,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64
	for _, article := range articles {
		body, err := json.Marshal(article)
		if err != nil {
			slog.Error("failed to marshal article", "error", err, "id", article.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: article.ID,
			Body:       bytes.NewReader(body),
			OnSuccess: func(context.Context, esutil.BulkIndexerItem, esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(_ context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add article to bulk indexer", "error", err, "id", article.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(articles),
		"index", x.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d articles", n, len(articles))
	}
	return nil
}

// EnsureIndex creates the article index with its mapping when it does not exist yet.
func (x *ArticleIndex) EnsureIndex(ctx context.Context) error {
	exists, err := x.client.Indices.Exists(x.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", x.indexName)
		return nil
	}

	mapping := articleMapping()
	res, err := x.client.Indices.Create(x.indexName).Mappings(&mapping).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !res.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", x.indexName)
	return nil
}

func (x *ArticleIndex) Healthy(ctx context.Context) bool {
	ok, err := x.client.Ping().IsSuccess(ctx)
	if err != nil {
		slog.Warn("Elasticsearch health check failed", "error", err)
		return false
	}
	return ok
}
