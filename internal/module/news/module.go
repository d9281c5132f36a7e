package news

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the news domain. It is the
// first of the two modules that also mount relay routes on the proxy
// surface.
type Module struct {
	handler *Handler
	proxy   *Proxy
}

// NewModule creates the news module. Panics if either part is nil.
func NewModule(h *Handler, p *Proxy) *Module {
	if h == nil || p == nil {
		panic("news.NewModule: handler and proxy must not be nil")
	}
	return &Module{handler: h, proxy: p}
}

// RegisterRoutes registers the versioned news routes and the proxy relay
// routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, relay *gin.RouterGroup) {
	api.GET("/news/top-headlines", m.handler.TopHeadlines)
	api.GET("/news/search", m.handler.Search)
	api.GET("/news/category/:category", m.handler.ByCategory)

	relay.GET("/news/top-headlines", m.proxy.TopHeadlines)
	relay.GET("/news/search", m.proxy.Search)
}
