package meta

import (
	"net/url"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
)

type Option func(*Composer)

type Composer struct {
	cfg Config
	now func() time.Time
}

func NewComposer(cfg Config, opts ...Option) *Composer {
	_ = cfg.normalize()

	c := &Composer{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithClock replaces the clock used when an article carries no timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) {
		c.now = now
	}
}

func (c *Composer) SiteName() string {
	return c.cfg.SiteName
}

// Compose derives the preview metadata of an article.
func (c *Composer) Compose(article domain.Article) domain.PreviewMeta {
	title := article.Title
	if title == "" {
		title = c.cfg.SiteName
	}

	return domain.PreviewMeta{
		Title:         title,
		Description:   c.describe(article),
		Image:         c.ResolveImage(article.ImageURL),
		URL:           c.ShareURL(article.ID),
		AppURL:        c.AppURL(article.ID),
		PublishedTime: c.publishedTime(article),
		SiteName:      c.cfg.SiteName,
	}
}

func (c *Composer) describe(article domain.Article) string {
	candidates := []string{
		article.Excerpt,
		article.Subtitle,
		Truncate(StripTags(article.Content), c.cfg.DescriptionMax),
		article.Title,
	}
	for _, s := range candidates {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func (c *Composer) publishedTime(article domain.Article) string {
	ts := c.now()
	switch {
	case article.PublishedAt != nil:
		ts = *article.PublishedAt
	case article.CreatedAt != nil:
		ts = *article.CreatedAt
	}
	return ts.UTC().Format(time.RFC3339)
}

// ResolveImage turns a stored image reference into an absolute URL.
func (c *Composer) ResolveImage(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return c.cfg.DefaultImage
	}

	if c.cfg.LegacyImagePrefix != "" && c.cfg.ImagePrefix != "" {
		ref = strings.Replace(ref, c.cfg.LegacyImagePrefix, c.cfg.ImagePrefix, 1)
	}

	lower := strings.ToLower(ref)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return ref
	case strings.HasPrefix(ref, "//"):
		return "https:" + ref
	}
	return c.cfg.ImageBaseURL + "/" + strings.TrimLeft(ref, "/")
}

// ShareURL is the canonical URL crawlers should index.
func (c *Composer) ShareURL(id string) string {
	return c.cfg.SiteURL + "/article/" + url.PathEscape(id)
}

// AppURL is the hash-routed URL human visitors are sent to.
func (c *Composer) AppURL(id string) string {
	return c.cfg.SiteURL + "/#/article/" + url.PathEscape(id)
}
