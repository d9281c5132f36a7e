package dashboard

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the aggregated dashboard.
type Module struct {
	handler *Handler
}

// NewModule creates the dashboard module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("dashboard.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers the dashboard route.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, relay *gin.RouterGroup) {
	api.GET("/dashboard", m.handler.Get)
}
