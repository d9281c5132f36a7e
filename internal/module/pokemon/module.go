package pokemon

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the pokemon domain.
type Module struct {
	handler *Handler
}

// NewModule creates the pokemon module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("pokemon.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers the pokemon API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, relay *gin.RouterGroup) {
	api.GET("/pokemon", m.handler.List)
	api.GET("/pokemon/details", m.handler.Details)
	api.GET("/pokemon/types", m.handler.Types)
	api.GET("/pokemon/type/:type", m.handler.ByType)
	api.GET("/pokemon/:name", m.handler.Get)
	api.GET("/pokemon/:name/species", m.handler.Species)
}
