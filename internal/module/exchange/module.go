package exchange

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the exchange-rate domain.
type Module struct {
	handler *Handler
}

// NewModule creates the exchange module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("exchange.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers the exchange-rate API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, relay *gin.RouterGroup) {
	api.GET("/exchange/rates", m.handler.Rates)
	api.GET("/exchange/currencies", m.handler.Currencies)
	api.GET("/exchange/convert", m.handler.Convert)
	api.GET("/exchange/historical", m.handler.Historical)
	api.GET("/exchange/series", m.handler.Series)
}
