package preview

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/newsdesk/internal/apperr"
	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	_ "golang.org/x/image/webp"
)

const (
	Width       = 1200
	Height      = 630
	JPEGQuality = 90
)

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ImageResolver turns stored image references into absolute URLs.
type ImageResolver interface {
	ResolveImage(ref string) string
}

type Palette interface {
	Color(label string) string
}

type Compositor struct {
	fetcher  Fetcher
	resolver ImageResolver
	palette  Palette
	brand    Branding
}

func NewCompositor(fetcher Fetcher, resolver ImageResolver, palette Palette, brand Branding) *Compositor {
	if brand.Initials == "" {
		brand.Initials = initials(brand.SiteName)
	}
	if brand.Color == "" {
		brand.Color = "#c62828"
	}
	if brand.DefaultCategory == "" {
		brand.DefaultCategory = "NOTICIAS"
	}
	return &Compositor{
		fetcher:  fetcher,
		resolver: resolver,
		palette:  palette,
		brand:    brand,
	}
}

// Render produces the social card JPEG of an article.
func (c *Compositor) Render(ctx context.Context, article domain.Article) ([]byte, error) {
	if strings.TrimSpace(article.ImageURL) == "" {
		return nil, apperr.NewNotFound("Article has no image")
	}

	src := c.resolver.ResolveImage(article.ImageURL)
	raw, err := c.fetcher.Fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode source image %s: %w", src, err)
	}
	slog.Debug("Source image decoded", "id", article.ID, "format", format, "bounds", img.Bounds().String())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	canvas := Cover(img, Width, Height)
	if err := drawOverlay(canvas, c.brand, article.Category, c.palette.Color(article.Category)); err != nil {
		return nil, fmt.Errorf("failed to draw overlay: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}
	return buf.Bytes(), nil
}
