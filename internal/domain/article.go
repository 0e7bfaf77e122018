package domain

import "time"

type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle,omitempty"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content"`
	Category    string     `json:"category,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	ViewCount   int64      `json:"view_count"`
}

// IsPublished reports whether the article may appear in public feeds.
func (a Article) IsPublished() bool {
	return a.PublishedAt != nil
}

// ArticleFilter narrows a feed listing. Zero value lists every published article.
type ArticleFilter struct {
	Category string
}
