package countries

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the country domain.
type Module struct {
	handler *Handler
}

// NewModule creates the countries module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("countries.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers the country API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, relay *gin.RouterGroup) {
	api.GET("/countries", m.handler.List)
	api.GET("/countries/search", m.handler.Search)
	api.GET("/countries/region/:region", m.handler.ByRegion)
	api.GET("/countries/:code", m.handler.Get)
}
