package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/omnidash/omnidash/internal/pkg"
)

// Handler serves the aggregated dashboard route.
type Handler struct {
	service *Service
}

// NewHandler creates a Handler backed by the given service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get handles GET /api/v1/dashboard.
func (h *Handler) Get(c *gin.Context) {
	pkg.Success(c, h.service.Snapshot(c.Request.Context()))
}
