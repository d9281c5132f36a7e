package app

import "github.com/gin-gonic/gin"

// Module defines the contract for a self-registering business module. Each
// module registers its versioned API routes; the two proxy-backed modules
// additionally mount relay routes on the unversioned proxy surface.
type Module interface {
	RegisterRoutes(api *gin.RouterGroup, relay *gin.RouterGroup)
}
