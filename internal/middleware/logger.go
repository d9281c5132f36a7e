package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger returns a gin middleware that logs each request with the provided
// slog.Logger: method, path, status, latency, and client IP. The level
// follows the response status (2xx/3xx info, 4xx warn, 5xx error), and the
// context-aware calls let the ContextHandler attach the request_id.
func Logger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			logger.LogAttrs(ctx, slog.LevelError, "request", attrs...)
		case status >= 400:
			logger.LogAttrs(ctx, slog.LevelWarn, "request", attrs...)
		default:
			logger.LogAttrs(ctx, slog.LevelInfo, "request", attrs...)
		}
	}
}
