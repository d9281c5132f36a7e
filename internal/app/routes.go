package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omnidash/omnidash/internal/pkg"
)

// RouteDeps holds all dependencies needed to register routes.
type RouteDeps struct {
	Modules           []Module
	NewsKeyConfigured bool
	TMDBKeyConfigured bool
}

// RegisterRoutes registers all application routes on the given gin.Engine.
// Modules mount their versioned routes under /api/v1; the news and movies
// modules additionally mount relay routes under /api.
func RegisterRoutes(r *gin.Engine, deps *RouteDeps) error {
	if r == nil {
		return errors.New("router is nil")
	}
	if deps == nil {
		return errors.New("route dependencies are nil")
	}
	if len(deps.Modules) == 0 {
		return errors.New("at least one module is required")
	}

	r.GET("/health", healthHandler(deps))

	api := r.Group("/api/v1")
	relay := r.Group("/api")

	for i, m := range deps.Modules {
		if m == nil {
			return fmt.Errorf("module at index %d is nil", i)
		}
		m.RegisterRoutes(api, relay)
	}

	r.NoRoute(noRouteHandler())

	return nil
}

// healthHandler reports liveness plus which provider keys are configured.
// The flags tell operators whether the relay routes are usable without
// exposing the keys themselves.
func healthHandler(deps *RouteDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"providers": gin.H{
				"news_key_configured": deps.NewsKeyConfigured,
				"tmdb_key_configured": deps.TMDBKeyConfigured,
			},
		})
	}
}

func noRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, pkg.Response{Code: http.StatusNotFound, Message: "not found"})
	}
}
