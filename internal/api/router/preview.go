package router

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/newsdesk/internal/apperr"
	"github.com/DjordjeVuckovic/newsdesk/internal/bot"
	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	"github.com/DjordjeVuckovic/newsdesk/internal/meta"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage"
	"github.com/labstack/echo/v4"
)

const (
	cacheNoStore  = "no-cache, no-store, must-revalidate"
	cacheCrawler  = "public, max-age=86400, s-maxage=86400"
	cachePreview  = "public, max-age=3600"
	mimeImageJPEG = "image/jpeg"
)

type ImageRenderer interface {
	Render(ctx context.Context, article domain.Article) ([]byte, error)
}

type PreviewOption func(*PreviewRouter)

// WithRequirePublished hides unpublished articles from every preview route.
func WithRequirePublished(require bool) PreviewOption {
	return func(r *PreviewRouter) {
		r.requirePublished = require
	}
}

type PreviewRouter struct {
	e        *echo.Echo
	articles storage.ArticleReader
	detector *bot.Detector
	composer *meta.Composer
	images   ImageRenderer

	requirePublished bool
}

func NewPreviewRouter(
	e *echo.Echo,
	articles storage.ArticleReader,
	detector *bot.Detector,
	composer *meta.Composer,
	images ImageRenderer,
	opts ...PreviewOption,
) *PreviewRouter {
	r := &PreviewRouter{
		e:        e,
		articles: articles,
		detector: detector,
		composer: composer,
		images:   images,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *PreviewRouter) Bind() {
	plain := apperr.WithFormat(apperr.FormatPlain)
	methods := []string{http.MethodGet, http.MethodHead}

	r.e.Match(methods, "/og/article/:id", r.sharePage, plain)
	r.e.Match(methods, "/article/:id", r.sharePage, plain)
	r.e.Match(methods, "/api/article-image/:id", r.articleImage, plain)
	r.e.GET("/api/article-meta", r.articleMeta, apperr.WithFormat(apperr.FormatJSON))
}

// sharePage godoc
// @Summary Shared article link
// @Description Crawlers get an HTML page with Open Graph tags, everyone else is redirected to the app.
// @Tags preview
// @Produce html
// @Param id path string true "Article ID"
// @Success 200 {string} string "HTML page"
// @Success 302 "Redirect to the app"
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /og/article/{id} [get]
func (r *PreviewRouter) sharePage(c echo.Context) error {
	id, err := requireID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := ready(r.articles); err != nil {
		return err
	}

	ua := c.Request().UserAgent()
	if !r.detector.IsBot(ua) {
		slog.Debug("Redirecting visitor to the app", "id", id, "bot", false)
		c.Response().Header().Set(echo.HeaderCacheControl, cacheNoStore)
		return c.Redirect(http.StatusFound, r.composer.AppURL(id))
	}

	slog.Info("Serving share preview to crawler", "id", id, "bot", true, "user_agent", ua)

	article, err := r.lookup(c.Request().Context(), id)
	if err != nil {
		return err
	}

	page, err := meta.RenderHTML(r.composer.Compose(*article))
	if err != nil {
		return fmt.Errorf("failed to render share page for %s: %w", id, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, cacheCrawler)
	return c.HTMLBlob(http.StatusOK, page)
}

// articleImage godoc
// @Summary Article preview image
// @Description Branded 1200x630 JPEG built from the article image.
// @Tags preview
// @Produce jpeg
// @Param id path string true "Article ID"
// @Success 200 {file} binary
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /api/article-image/{id} [get]
func (r *PreviewRouter) articleImage(c echo.Context) error {
	id, err := requireID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := ready(r.articles); err != nil {
		return err
	}

	article, err := r.lookup(c.Request().Context(), id)
	if err != nil {
		return err
	}

	img, err := r.images.Render(c.Request().Context(), *article)
	if err != nil {
		return err
	}

	h := c.Response().Header()
	h.Set(echo.HeaderCacheControl, cachePreview)
	h.Set(echo.HeaderContentLength, strconv.Itoa(len(img)))
	h.Set("Accept-Ranges", "none")
	return c.Blob(http.StatusOK, mimeImageJPEG, img)
}

// articleMeta godoc
// @Summary Article preview metadata
// @Tags preview
// @Produce json
// @Param id query string true "Article ID"
// @Success 200 {object} meta.Payload
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/article-meta [get]
func (r *PreviewRouter) articleMeta(c echo.Context) error {
	id, err := requireID(c.QueryParam("id"))
	if err != nil {
		return err
	}
	if err := ready(r.articles); err != nil {
		return err
	}

	article, err := r.lookup(c.Request().Context(), id)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderCacheControl, cachePreview)
	return c.JSON(http.StatusOK, meta.RenderJSON(r.composer.Compose(*article)))
}

func (r *PreviewRouter) lookup(ctx context.Context, id string) (*domain.Article, error) {
	article, err := r.articles.ArticleByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Article not found")
	}
	if r.requirePublished && !article.IsPublished() {
		return nil, apperr.NewNotFound("Article not found")
	}
	return article, nil
}
