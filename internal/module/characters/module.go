package characters

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the character domain.
type Module struct {
	handler *Handler
}

// NewModule creates the characters module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("characters.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers the character API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, relay *gin.RouterGroup) {
	api.GET("/characters", m.handler.List)
	api.GET("/characters/filter", m.handler.Filter)
	api.GET("/characters/:id", m.handler.Get)
}
