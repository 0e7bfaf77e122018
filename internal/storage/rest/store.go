package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage"
	"github.com/DjordjeVuckovic/newsdesk/pkg/pagination"
)

const articleColumns = "id,title,subtitle,excerpt,content,category,image_url,published_at,created_at,view_count"

type Store struct {
	c *client
}

func NewStore(cfg ClientConfig, opts ...ClientOption) (*Store, error) {
	c, err := newClient(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) ArticleByID(ctx context.Context, id string) (*domain.Article, error) {
	q := url.Values{}
	q.Set("select", articleColumns)
	q.Set("id", "eq."+id)
	q.Set("limit", "1")

	var rows []domain.Article
	if _, err := s.c.get(ctx, "articles", q, &rows, nil); err != nil {
		return nil, fmt.Errorf("failed to fetch article %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, storage.ErrNotFound
	}
	return &rows[0], nil
}

func (s *Store) ListPublished(ctx context.Context, filter domain.ArticleFilter, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Article], error) {
	_ = page.Validate()

	q := url.Values{}
	q.Set("select", articleColumns)
	q.Set("published_at", "not.is.null")
	q.Set("order", "published_at.desc,id.desc")
	q.Set("offset", strconv.Itoa(page.Offset()))
	q.Set("limit", strconv.Itoa(page.Size))
	if filter.Category != "" {
		q.Set("category", "ilike."+filter.Category)
	}

	var rows []domain.Article
	resp, err := s.c.get(ctx, "articles", q, &rows, map[string]string{"Prefer": "count=exact"})
	if err != nil {
		return nil, fmt.Errorf("failed to list published articles: %w", err)
	}

	total := totalFromContentRange(resp.contentRange)
	if total < 0 {
		total = int64(page.Offset() + len(rows))
	}

	slog.Debug("Listed published articles", "category", filter.Category, "page", page.Page, "returned", len(rows), "total", total)
	return pagination.NewOffsetResult(rows, total, page.Page, page.Size), nil
}

func (s *Store) LiveAds(ctx context.Context, now time.Time) ([]domain.Ad, error) {
	q := url.Values{}
	q.Set("select", "id,title,image_url,link_url,active,start_date,end_date,position")
	q.Set("active", "is.true")
	q.Set("order", "position.asc")

	var rows []domain.Ad
	if _, err := s.c.get(ctx, "ads", q, &rows, nil); err != nil {
		return nil, fmt.Errorf("failed to fetch ads: %w", err)
	}

	live := make([]domain.Ad, 0, len(rows))
	for _, ad := range rows {
		if ad.Live(now) {
			live = append(live, ad)
		}
	}
	return live, nil
}

func (s *Store) Categories(ctx context.Context) ([]domain.Category, error) {
	q := url.Values{}
	q.Set("select", "id,name,slug,color")
	q.Set("order", "name.asc")

	var rows []domain.Category
	if _, err := s.c.get(ctx, "categories", q, &rows, nil); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return rows, nil
}

// IncrementViews reads the counter and writes it back plus one. There is no
// transaction around the pair.
func (s *Store) IncrementViews(ctx context.Context, id string) (int64, error) {
	q := url.Values{}
	q.Set("select", "view_count")
	q.Set("id", "eq."+id)

	var rows []struct {
		ViewCount int64 `json:"view_count"`
	}
	if _, err := s.c.get(ctx, "articles", q, &rows, nil); err != nil {
		return 0, fmt.Errorf("failed to read view count: %w", err)
	}
	if len(rows) == 0 {
		return 0, storage.ErrNotFound
	}

	next := rows[0].ViewCount + 1
	if err := s.patch(ctx, "articles", id, map[string]any{"view_count": next}); err != nil {
		return 0, fmt.Errorf("failed to write view count: %w", err)
	}
	return next, nil
}

func (s *Store) SwapAdPositions(ctx context.Context, first, second string) error {
	q := url.Values{}
	q.Set("select", "id,position")
	q.Set("id", "in.("+first+","+second+")")

	var rows []struct {
		ID       string `json:"id"`
		Position int    `json:"position"`
	}
	if _, err := s.c.get(ctx, "ads", q, &rows, nil); err != nil {
		return fmt.Errorf("failed to read ad positions: %w", err)
	}

	positions := make(map[string]int, len(rows))
	for _, r := range rows {
		positions[r.ID] = r.Position
	}
	pa, okA := positions[first]
	pb, okB := positions[second]
	if !okA || !okB {
		return storage.ErrNotFound
	}

	if err := s.patch(ctx, "ads", first, map[string]any{"position": pb}); err != nil {
		return fmt.Errorf("failed to move ad %s: %w", first, err)
	}
	if err := s.patch(ctx, "ads", second, map[string]any{"position": pa}); err != nil {
		return fmt.Errorf("failed to move ad %s: %w", second, err)
	}
	return nil
}

func (s *Store) patch(ctx context.Context, table, id string, values map[string]any) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	_, err := s.c.do(ctx, http.MethodPatch, table, q, values, map[string]string{"Prefer": "return=minimal"})
	return err
}

// Healthy probes the categories table with a single-row read.
func (s *Store) Healthy(ctx context.Context) bool {
	q := url.Values{}
	q.Set("select", "id")
	q.Set("limit", "1")

	var rows []map[string]any
	_, err := s.c.get(ctx, "categories", q, &rows, nil)
	if err != nil {
		slog.Warn("Article store health check failed", "error", err)
		return false
	}
	return true
}
