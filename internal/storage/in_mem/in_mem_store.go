package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage"
	"github.com/DjordjeVuckovic/newsdesk/pkg/pagination"
	"github.com/google/uuid"
)

type InMemStore struct {
	storageLock sync.RWMutex
	articles    map[string]domain.Article
	ads         map[string]domain.Ad
	categories  []domain.Category
}

func NewInMemStore() *InMemStore {
	return &InMemStore{
		articles: make(map[string]domain.Article),
		ads:      make(map[string]domain.Ad),
	}
}

// PutArticle inserts or replaces an article and returns its id. A missing id
// is generated.
func (s *InMemStore) PutArticle(article domain.Article) string {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.articles[article.ID] = article
	slog.Debug("Saving article to in-memory storage", "title", article.Title, "id", article.ID)
	return article.ID
}

func (s *InMemStore) PutAd(ad domain.Ad) string {
	if ad.ID == "" {
		ad.ID = uuid.NewString()
	}
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.ads[ad.ID] = ad
	return ad.ID
}

func (s *InMemStore) PutCategories(categories ...domain.Category) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.categories = append(s.categories, categories...)
}

func (s *InMemStore) ArticleByID(_ context.Context, id string) (*domain.Article, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	a, ok := s.articles[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &a, nil
}

func (s *InMemStore) ListPublished(_ context.Context, filter domain.ArticleFilter, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Article], error) {
	_ = page.Validate()

	s.storageLock.RLock()
	var matched []domain.Article
	for _, a := range s.articles {
		if !a.IsPublished() {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(a.Category, filter.Category) {
			continue
		}
		matched = append(matched, a)
	}
	s.storageLock.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		pi, pj := *matched[i].PublishedAt, *matched[j].PublishedAt
		if pi.Equal(pj) {
			return matched[i].ID > matched[j].ID
		}
		return pi.After(pj)
	})

	total := int64(len(matched))
	start := min(page.Offset(), len(matched))
	end := min(start+page.Size, len(matched))

	return pagination.NewOffsetResult(matched[start:end], total, page.Page, page.Size), nil
}

func (s *InMemStore) LiveAds(_ context.Context, now time.Time) ([]domain.Ad, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	ads := make([]domain.Ad, 0, len(s.ads))
	for _, ad := range s.ads {
		if ad.Live(now) {
			ads = append(ads, ad)
		}
	}
	sort.Slice(ads, func(i, j int) bool { return ads[i].Position < ads[j].Position })
	return ads, nil
}

func (s *InMemStore) Categories(context.Context) ([]domain.Category, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func (s *InMemStore) IncrementViews(_ context.Context, id string) (int64, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return 0, storage.ErrNotFound
	}
	a.ViewCount++
	s.articles[id] = a
	return a.ViewCount, nil
}

func (s *InMemStore) SwapAdPositions(_ context.Context, first, second string) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	a, okA := s.ads[first]
	b, okB := s.ads[second]
	if !okA || !okB {
		return storage.ErrNotFound
	}
	a.Position, b.Position = b.Position, a.Position
	s.ads[first] = a
	s.ads[second] = b
	return nil
}

func (s *InMemStore) Healthy(context.Context) bool {
	return true
}
