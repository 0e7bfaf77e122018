package meta

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

func testComposer(mut ...func(*Config)) *Composer {
	cfg := Config{
		SiteName: "Diario Test",
		SiteURL:  "https://diario.test/",
	}
	for _, m := range mut {
		m(&cfg)
	}
	return NewComposer(cfg, WithClock(func() time.Time { return fixedNow }))
}

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestComposer_Compose(t *testing.T) {
	c := testComposer()

	got := c.Compose(domain.Article{
		ID:        "a1",
		Title:     "Hola",
		Content:   "<p>Uno dos tres</p>",
		ImageURL:  "https://cdn/x.jpg",
		CreatedAt: ts("2024-01-01T00:00:00Z"),
	})

	assert.Equal(t, domain.PreviewMeta{
		Title:         "Hola",
		Description:   "Uno dos tres",
		Image:         "https://cdn/x.jpg",
		URL:           "https://diario.test/article/a1",
		AppURL:        "https://diario.test/#/article/a1",
		PublishedTime: "2024-01-01T00:00:00Z",
		SiteName:      "Diario Test",
	}, got)
}

func TestComposer_Description(t *testing.T) {
	c := testComposer()
	long := strings.Repeat("palabra ", 40)

	tests := []struct {
		name    string
		article domain.Article
		want    string
	}{
		{
			name:    "excerpt wins unmodified",
			article: domain.Article{Title: "T", Excerpt: "  <b>Resumen</b> " + long, Subtitle: "Sub", Content: "Cuerpo"},
			want:    "  <b>Resumen</b> " + long,
		},
		{
			name:    "subtitle when no excerpt",
			article: domain.Article{Title: "T", Subtitle: "Sub", Content: "Cuerpo"},
			want:    "Sub",
		},
		{
			name:    "stripped content",
			article: domain.Article{Title: "T", Content: "<p>Cuerpo <em>rico</em></p>"},
			want:    "Cuerpo rico",
		},
		{
			name:    "title when content is only markup",
			article: domain.Article{Title: "T", Content: "<img src=x>"},
			want:    "T",
		},
		{
			name:    "empty",
			article: domain.Article{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Compose(tt.article).Description)
		})
	}
}

func TestComposer_LongContentIsTruncated(t *testing.T) {
	c := testComposer()
	content := "<p>" + strings.Repeat("noticia de ultima hora ", 20) + "</p>"

	got := c.Compose(domain.Article{Title: "T", Content: content}).Description

	assert.LessOrEqual(t, utf8.RuneCountInString(got), 163)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.False(t, strings.HasSuffix(strings.TrimSuffix(got, "..."), " "))
}

func TestComposer_TitleFallsBackToSiteName(t *testing.T) {
	c := testComposer()

	got := c.Compose(domain.Article{ID: "x"})

	assert.Equal(t, "Diario Test", got.Title)
}

func TestComposer_PublishedTime(t *testing.T) {
	c := testComposer()

	tests := []struct {
		name    string
		article domain.Article
		want    string
	}{
		{
			name:    "published wins",
			article: domain.Article{PublishedAt: ts("2024-05-01T10:00:00+02:00"), CreatedAt: ts("2024-01-01T00:00:00Z")},
			want:    "2024-05-01T08:00:00Z",
		},
		{
			name:    "created when unpublished",
			article: domain.Article{CreatedAt: ts("2024-01-01T00:00:00Z")},
			want:    "2024-01-01T00:00:00Z",
		},
		{
			name:    "clock when no timestamps",
			article: domain.Article{},
			want:    "2025-03-10T08:30:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Compose(tt.article).PublishedTime)
		})
	}
}

func TestComposer_ResolveImage(t *testing.T) {
	c := testComposer(func(cfg *Config) {
		cfg.ImageBaseURL = "https://store.test/storage/v1/object/public"
		cfg.LegacyImagePrefix = "news-images/"
		cfg.ImagePrefix = "article-images/"
	})

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{name: "absolute kept", ref: "https://cdn/x.jpg", want: "https://cdn/x.jpg"},
		{name: "absolute http kept", ref: "HTTP://cdn/x.jpg", want: "HTTP://cdn/x.jpg"},
		{name: "protocol relative", ref: "//cdn/x.jpg", want: "https://cdn/x.jpg"},
		{name: "relative path", ref: "/article-images/x.jpg", want: "https://store.test/storage/v1/object/public/article-images/x.jpg"},
		{name: "legacy prefix rewritten", ref: "news-images/x.jpg", want: "https://store.test/storage/v1/object/public/article-images/x.jpg"},
		{name: "legacy prefix in absolute url", ref: "https://store.test/news-images/x.jpg", want: "https://store.test/article-images/x.jpg"},
		{name: "empty uses default", ref: "", want: "https://diario.test/og-default.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ResolveImage(tt.ref))
		})
	}
}

func TestComposer_URLsEscapeID(t *testing.T) {
	c := testComposer()

	assert.Equal(t, "https://diario.test/article/a%20b", c.ShareURL("a b"))
	assert.Equal(t, "https://diario.test/#/article/a%20b", c.AppURL("a b"))
}
