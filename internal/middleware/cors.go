package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig holds the configuration for the CORS middleware.
type CORSConfig struct {
	// AllowOrigins lists origins allowed to make cross-origin requests.
	// ["*"] allows every origin, the gateway's default posture: the proxy
	// exists so browser dashboards on any origin can reach it.
	AllowOrigins []string

	// AllowMethods lists HTTP methods allowed for cross-origin requests.
	AllowMethods []string

	// AllowHeaders lists headers allowed in cross-origin requests.
	AllowHeaders []string

	// MaxAge is how long (in seconds) a preflight result may be cached.
	MaxAge string
}

// DefaultCORSConfig returns the permissive configuration the gateway ships
// with. The relay carries no caller credentials, so a wildcard is safe.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       "86400",
	}
}

// CORS returns a gin middleware handling cross-origin resource sharing with
// the default permissive configuration.
func CORS() gin.HandlerFunc {
	return CORSWithConfig(DefaultCORSConfig())
}

// CORSWithConfig returns a gin middleware handling cross-origin resource
// sharing with the provided configuration.
func CORSWithConfig(cfg CORSConfig) gin.HandlerFunc {
	allowOrigins := strings.Join(cfg.AllowOrigins, ", ")
	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		// Caches must differentiate responses by Origin.
		c.Writer.Header().Add("Vary", "Origin")

		switch {
		case allowOrigins == "*":
			c.Header("Access-Control-Allow-Origin", "*")
		case originAllowed(cfg.AllowOrigins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
		default:
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Methods", allowMethods)
		c.Header("Access-Control-Allow-Headers", allowHeaders)
		c.Header("Access-Control-Max-Age", cfg.MaxAge)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(allowed []string, origin string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
