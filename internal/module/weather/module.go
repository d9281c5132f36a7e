package weather

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the weather domain.
type Module struct {
	handler *Handler
}

// NewModule creates the weather module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("weather.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers the weather API routes. The weather domain has no
// relay routes; its provider needs no credentials.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, relay *gin.RouterGroup) {
	api.GET("/weather", m.handler.ByCity)
	api.GET("/weather/current", m.handler.Current)
}
