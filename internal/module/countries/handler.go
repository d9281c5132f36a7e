package countries

import (
	"github.com/gin-gonic/gin"

	"github.com/omnidash/omnidash/internal/pkg"
)

// Handler serves the country API routes.
type Handler struct {
	client *Client
}

// NewHandler creates a Handler backed by the given client.
func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

type searchQuery struct {
	Name string `form:"name" binding:"required"`
}

// List handles GET /api/v1/countries.
func (h *Handler) List(c *gin.Context) {
	list, err := h.client.AllCountries(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, list)
}

// Get handles GET /api/v1/countries/:code.
func (h *Handler) Get(c *gin.Context) {
	list, err := h.client.CountryByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, list)
}

// Search handles GET /api/v1/countries/search?name=.
func (h *Handler) Search(c *gin.Context) {
	var q searchQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	list, err := h.client.SearchCountries(c.Request.Context(), q.Name)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, list)
}

// ByRegion handles GET /api/v1/countries/region/:region.
func (h *Handler) ByRegion(c *gin.Context) {
	list, err := h.client.CountriesByRegion(c.Request.Context(), c.Param("region"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, list)
}
