package router

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/newsdesk/internal/apperr"
	"github.com/DjordjeVuckovic/newsdesk/internal/catalog"
	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage"
	"github.com/DjordjeVuckovic/newsdesk/pkg/pagination"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const HeaderAPIKey = "X-API-Key"

type FeedRouter struct {
	e        *echo.Echo
	store    storage.Store
	catalog  *catalog.Catalog
	adminKey string
	now      func() time.Time
}

type FeedOption func(*FeedRouter)

// WithAdminKey enables the ad management routes behind an API key.
func WithAdminKey(key string) FeedOption {
	return func(r *FeedRouter) {
		r.adminKey = key
	}
}

func WithFeedClock(now func() time.Time) FeedOption {
	return func(r *FeedRouter) {
		r.now = now
	}
}

func NewFeedRouter(e *echo.Echo, store storage.Store, cat *catalog.Catalog, opts ...FeedOption) *FeedRouter {
	r := &FeedRouter{
		e:       e,
		store:   store,
		catalog: cat,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type ViewCountResponse struct {
	ID        string `json:"id"`
	ViewCount int64  `json:"view_count"`
}

type SwapAdsRequest struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

func (r *FeedRouter) Bind() {
	g := r.e.Group("/api", apperr.WithFormat(apperr.FormatJSON))

	g.GET("/articles", r.listArticles)
	g.GET("/categories", r.listCategories)
	g.GET("/ads", r.listAds)
	g.POST("/articles/:id/views", r.recordView)

	if r.adminKey == "" {
		return
	}
	g.POST("/ads/swap", r.swapAds, middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "header:" + HeaderAPIKey,
		Validator: func(key string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(r.adminKey)) == 1, nil
		},
	}))
}

// listArticles godoc
// @Summary List published articles
// @Tags feed
// @Produce json
// @Param category query string false "Category name"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} pagination.OffsetResult[domain.Article]
// @Failure 400 {object} map[string]string
// @Router /api/articles [get]
func (r *FeedRouter) listArticles(c echo.Context) error {
	var (
		page     pagination.OffsetRequest
		category string
	)
	err := echo.QueryParamsBinder(c).
		Int("page", &page.Page).
		Int("size", &page.Size).
		String("category", &category).
		BindError()
	if err != nil {
		return apperr.NewValidationWrap("Invalid query parameters", err)
	}
	_ = page.Validate()

	filter := domain.ArticleFilter{}
	if category != "" {
		filter.Category = category
		if known, ok := r.catalog.Lookup(category); ok {
			filter.Category = known.Name
		}
	}

	result, err := r.store.ListPublished(c.Request().Context(), filter, page)
	if err != nil {
		return storeError(err, "Articles not found")
	}
	return c.JSON(http.StatusOK, result)
}

// listCategories godoc
// @Summary List categories
// @Tags feed
// @Produce json
// @Success 200 {array} domain.Category
// @Router /api/categories [get]
func (r *FeedRouter) listCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, r.catalog.All())
}

// listAds godoc
// @Summary List live ads
// @Tags feed
// @Produce json
// @Success 200 {array} domain.Ad
// @Router /api/ads [get]
func (r *FeedRouter) listAds(c echo.Context) error {
	ads, err := r.store.LiveAds(c.Request().Context(), r.now())
	if err != nil {
		return storeError(err, "Ads not found")
	}
	if ads == nil {
		ads = []domain.Ad{}
	}
	return c.JSON(http.StatusOK, ads)
}

// recordView godoc
// @Summary Count an article view
// @Tags feed
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} ViewCountResponse
// @Failure 404 {object} map[string]string
// @Router /api/articles/{id}/views [post]
func (r *FeedRouter) recordView(c echo.Context) error {
	id, err := requireID(c.Param("id"))
	if err != nil {
		return err
	}

	count, err := r.store.IncrementViews(c.Request().Context(), id)
	if err != nil {
		return storeError(err, "Article not found")
	}
	return c.JSON(http.StatusOK, ViewCountResponse{ID: id, ViewCount: count})
}

// swapAds godoc
// @Summary Swap the positions of two ads
// @Tags admin
// @Accept json
// @Param request body SwapAdsRequest true "Ads to swap"
// @Param X-API-Key header string true "Admin API key"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/ads/swap [post]
func (r *FeedRouter) swapAds(c echo.Context) error {
	var req SwapAdsRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("Invalid request body", err)
	}
	if req.First == "" || req.Second == "" {
		return apperr.NewValidation("Both ad ids are required")
	}
	if req.First == req.Second {
		return apperr.NewValidation("Cannot swap an ad with itself")
	}

	if err := r.store.SwapAdPositions(c.Request().Context(), req.First, req.Second); err != nil {
		return storeError(err, "Ad not found")
	}
	return c.NoContent(http.StatusNoContent)
}
