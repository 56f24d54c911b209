package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pulsefeed/pulsefeed/internal/logging"
	"github.com/pulsefeed/pulsefeed/internal/middleware"
	"github.com/pulsefeed/pulsefeed/internal/models"
	"github.com/pulsefeed/pulsefeed/internal/news"
)

// TrendingHandler serves the trending, search and saved-article endpoints.
type TrendingHandler struct {
	trending *news.Trending
	search   *news.Search
	saved    *news.Saved
	log      *logging.Logger
}

func NewTrendingHandler(trending *news.Trending, search *news.Search, saved *news.Saved, log *logging.Logger) *TrendingHandler {
	return &TrendingHandler{
		trending: trending,
		search:   search,
		saved:    saved,
		log:      log,
	}
}

// GetTrending godoc
// @Summary Trending tech news
// @Description Returns the cached, AI-scored trending list, refreshing it from all sources on a cache miss. Articles are sorted by score, highest first.
// @Tags trending
// @Produce json
// @Param page query int false "Page, starting at 1" default(1)
// @Param limit query int false "Articles per page" default(10)
// @Param refresh query bool false "Force a refresh before serving"
// @Success 200 {object} models.TrendingResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/trending [get]
func (h *TrendingHandler) GetTrending(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	if c.Query("refresh") == "true" {
		if err := h.trending.Refresh(c.Request.Context()); err != nil {
			h.log.Warnf("forced refresh failed, serving cached data: %v", err)
		}
	}

	resp, err := h.trending.Get(c.Request.Context(), page, limit)
	if err != nil {
		if errors.Is(err, models.ErrNoData) || errors.Is(err, models.ErrNoSources) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No trending news found."})
			return
		}
		h.log.Errorf("trending request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}
	if resp.Count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No trending news found."})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RefreshTrending godoc
// @Summary Force a trending refresh
// @Description Re-runs the aggregation and scoring pipeline immediately, replacing the cached list.
// @Tags trending
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/trending/refresh [post]
func (h *TrendingHandler) RefreshTrending(c *gin.Context) {
	if err := h.trending.Refresh(c.Request.Context()); err != nil {
		h.log.Errorf("forced refresh failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"message": "Refresh failed: no sources returned data."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trending news refreshed."})
}

// SearchNews godoc
// @Summary Search news
// @Description Combines trending-cache matches, archived articles and a live provider search. Results are cached per user and query. A failed search degrades to an empty result with a warning rather than an error.
// @Tags trending
// @Produce json
// @Param q query string true "Search query"
// @Param X-User-ID header string false "Caller identity; defaults to anonymous"
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/trending/search [get]
func (h *TrendingHandler) SearchNews(c *gin.Context) {
	query := c.Query("q")
	userID := middleware.GetUserID(c)

	resp, err := h.search.Query(c.Request.Context(), userID, query)
	if err != nil {
		if errors.Is(err, models.ErrQueryRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"message": `Search query parameter "q" is required.`})
			return
		}
		h.log.Errorf("search for %q failed: %v", query, err)
		c.JSON(http.StatusOK, gin.H{
			"query":    query,
			"articles": []models.Article{},
			"warning":  "Search failed or rate limited.",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SaveArticle godoc
// @Summary Save an article
// @Description Appends an article to the caller's reading list. Saving the same link twice is a no-op.
// @Tags saved
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Caller identity; defaults to anonymous"
// @Param request body models.SaveRequest true "Article to save"
// @Success 200 {object} models.SaveResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/trending/save [post]
func (h *TrendingHandler) SaveArticle(c *gin.Context) {
	var req models.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A valid article with title, description and link is required."})
		return
	}
	// Binding covers title and link; Valid additionally requires a
	// description so no incomplete article enters the saved cache.
	if !req.Article.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A valid article with title, description and link is required."})
		return
	}

	resp := h.saved.Save(middleware.GetUserID(c), req.Article)
	c.JSON(http.StatusOK, resp)
}

// GetSaved godoc
// @Summary List saved articles
// @Description Returns the caller's reading list in save order.
// @Tags saved
// @Produce json
// @Param X-User-ID header string false "Caller identity; defaults to anonymous"
// @Success 200 {object} models.SavedResponse
// @Router /api/v1/trending/saved [get]
func (h *TrendingHandler) GetSaved(c *gin.Context) {
	c.JSON(http.StatusOK, h.saved.List(middleware.GetUserID(c)))
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
