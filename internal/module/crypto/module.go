package crypto

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the cryptocurrency domain.
type Module struct {
	handler *Handler
}

// NewModule creates the crypto module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("crypto.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers the cryptocurrency API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, relay *gin.RouterGroup) {
	api.GET("/cryptos", m.handler.List)
	api.GET("/cryptos/search", m.handler.Search)
	api.GET("/cryptos/:id", m.handler.Get)
	api.GET("/cryptos/:id/history", m.handler.History)
}
