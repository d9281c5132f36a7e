package weather

import (
	"github.com/gin-gonic/gin"

	"github.com/omnidash/omnidash/internal/pkg"
)

// Handler serves the weather API routes.
type Handler struct {
	client *Client
}

// NewHandler creates a Handler backed by the given client.
func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

type cityQuery struct {
	City string `form:"city" binding:"required"`
}

type coordsQuery struct {
	Lat   *float64 `form:"lat" binding:"required"`
	Lon   *float64 `form:"lon" binding:"required"`
	Label string   `form:"label" binding:"required"`
}

// ByCity handles GET /api/v1/weather?city=.
func (h *Handler) ByCity(c *gin.Context) {
	var q cityQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	sample, err := h.client.SearchByCity(c.Request.Context(), q.City)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, sample)
}

// Current handles GET /api/v1/weather/current?lat=&lon=&label=.
func (h *Handler) Current(c *gin.Context) {
	var q coordsQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	sample, err := h.client.CurrentWeather(c.Request.Context(), *q.Lat, *q.Lon, q.Label)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, sample)
}
