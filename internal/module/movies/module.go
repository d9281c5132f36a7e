package movies

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the movie domain. Like
// news, it mounts relay routes on the proxy surface alongside the versioned
// API.
type Module struct {
	handler *Handler
	proxy   *Proxy
}

// NewModule creates the movies module. Panics if either part is nil.
func NewModule(h *Handler, p *Proxy) *Module {
	if h == nil || p == nil {
		panic("movies.NewModule: handler and proxy must not be nil")
	}
	return &Module{handler: h, proxy: p}
}

// RegisterRoutes registers the versioned movie routes and the proxy relay
// routes. Static relay paths register before the :id wildcard.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, relay *gin.RouterGroup) {
	api.GET("/movies/popular", m.handler.Popular)
	api.GET("/movies/search", m.handler.Search)
	api.GET("/movies/genres", m.handler.Genres)
	api.GET("/movies/genre/:id", m.handler.ByGenre)
	api.GET("/movies/:id", m.handler.Get)

	relay.GET("/movies/popular", m.proxy.Popular)
	relay.GET("/movies/search", m.proxy.Search)
	relay.GET("/movies/genres", m.proxy.Genres)
	relay.GET("/movies/genre/:id", m.proxy.ByGenre)
	relay.GET("/movies/:id", m.proxy.ByID)
}
