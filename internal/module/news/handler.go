package news

import (
	"github.com/gin-gonic/gin"

	"github.com/omnidash/omnidash/internal/pkg"
)

// Handler serves the news API routes on the versioned surface.
type Handler struct {
	client *Client
}

// NewHandler creates a Handler backed by the given client.
func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

type headlinesQuery struct {
	Category string `form:"category"`
	Country  string `form:"country"`
}

type searchQuery struct {
	Q string `form:"q" binding:"required"`
}

// TopHeadlines handles GET /api/v1/news/top-headlines?category=&country=.
func (h *Handler) TopHeadlines(c *gin.Context) {
	var q headlinesQuery
	if !pkg.BindQuery(c, &q) {
		return
	}
	pkg.Success(c, h.client.TopHeadlines(c.Request.Context(), q.Category, q.Country))
}

// Search handles GET /api/v1/news/search?q=.
func (h *Handler) Search(c *gin.Context) {
	var q searchQuery
	if !pkg.BindQuery(c, &q) {
		return
	}
	pkg.Success(c, h.client.SearchNews(c.Request.Context(), q.Q))
}

// ByCategory handles GET /api/v1/news/category/:category.
func (h *Handler) ByCategory(c *gin.Context) {
	pkg.Success(c, h.client.NewsByCategory(c.Request.Context(), c.Param("category")))
}
