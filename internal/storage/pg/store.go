package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage"
	"github.com/DjordjeVuckovic/newsdesk/pkg/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const articleSelect = `
	SELECT id::text, title, COALESCE(subtitle, ''), COALESCE(excerpt, ''), content,
	       COALESCE(category, ''), COALESCE(image_url, ''), published_at, created_at, view_count
	FROM articles
`

type Store struct {
	db *pgxpool.Pool
	*HealthChecker
}

func NewStore(pool *ConnectionPool) (*Store, error) {
	return &Store{db: pool.conn, HealthChecker: NewHealthChecker(pool)}, nil
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Subtitle,
		&a.Excerpt,
		&a.Content,
		&a.Category,
		&a.ImageURL,
		&a.PublishedAt,
		&a.CreatedAt,
		&a.ViewCount,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) ArticleByID(ctx context.Context, id string) (*domain.Article, error) {
	a, err := scanArticle(s.db.QueryRow(ctx, articleSelect+` WHERE id::text = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article %s: %w", id, err)
	}
	return a, nil
}

func (s *Store) ListPublished(ctx context.Context, filter domain.ArticleFilter, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Article], error) {
	_ = page.Validate()

	const where = ` WHERE published_at IS NOT NULL AND ($1 = '' OR lower(category) = lower($1))`

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM articles`+where, filter.Category).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count published articles: %w", err)
	}

	rows, err := s.db.Query(ctx,
		articleSelect+where+` ORDER BY published_at DESC, id DESC LIMIT $2 OFFSET $3`,
		filter.Category, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list published articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	slog.Debug("Listed published articles", "category", filter.Category, "page", page.Page, "returned", len(articles), "total", total)
	return pagination.NewOffsetResult(articles, total, page.Page, page.Size), nil
}

func (s *Store) LiveAds(ctx context.Context, now time.Time) ([]domain.Ad, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id::text, title, image_url, COALESCE(link_url, ''), active, start_date, end_date, position
		FROM ads
		WHERE active
		  AND (start_date IS NULL OR start_date <= $1)
		  AND (end_date IS NULL OR end_date >= $1)
		ORDER BY position ASC
	`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ads: %w", err)
	}
	defer rows.Close()

	ads := []domain.Ad{}
	for rows.Next() {
		var ad domain.Ad
		if err := rows.Scan(&ad.ID, &ad.Title, &ad.ImageURL, &ad.LinkURL, &ad.Active, &ad.StartsAt, &ad.EndsAt, &ad.Position); err != nil {
			return nil, fmt.Errorf("failed to scan ad: %w", err)
		}
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

func (s *Store) Categories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, slug, color FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Color); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) IncrementViews(ctx context.Context, id string) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx,
		`UPDATE articles SET view_count = view_count + 1 WHERE id::text = $1 RETURNING view_count`, id).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, storage.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}
	return n, nil
}

func (s *Store) SwapAdPositions(ctx context.Context, first, second string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `SELECT id::text, position FROM ads WHERE id::text IN ($1, $2) FOR UPDATE`, first, second)
	if err != nil {
		return fmt.Errorf("failed to lock ads: %w", err)
	}
	positions := make(map[string]int, 2)
	for rows.Next() {
		var id string
		var pos int
		if err := rows.Scan(&id, &pos); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan ad position: %w", err)
		}
		positions[id] = pos
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating rows: %w", err)
	}

	pa, okA := positions[first]
	pb, okB := positions[second]
	if !okA || !okB {
		return storage.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		UPDATE ads SET position = CASE WHEN id::text = $1 THEN $3::int ELSE $4::int END
		WHERE id::text IN ($1, $2)
	`, first, second, pb, pa)
	if err != nil {
		return fmt.Errorf("failed to swap ad positions: %w", err)
	}

	return tx.Commit(ctx)
}
