package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLogger_RecordsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(Logger(newJSONLogger(&buf)))
	r.GET("/api/v1/dashboard", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := buf.String()
	for _, want := range []string{`"method":"GET"`, `"path":"/api/v1/dashboard"`, `"status":200`, `"latency"`, `"client_ip"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log line missing %s: %s", want, out)
		}
	}
	if !strings.Contains(out, `"level":"INFO"`) {
		t.Errorf("expected INFO level for 200, got: %s", out)
	}
}

func TestLogger_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"4xx warns", http.StatusBadRequest, "WARN"},
		{"5xx errors", http.StatusBadGateway, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := gin.New()
			r.Use(Logger(newJSONLogger(&buf)))
			r.GET("/test", func(c *gin.Context) {
				c.Status(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if !strings.Contains(buf.String(), `"level":"`+tt.wantLevel+`"`) {
				t.Errorf("expected %s level, got: %s", tt.wantLevel, buf.String())
			}
		})
	}
}

func TestLogger_NilLoggerFallsBackToDefault(t *testing.T) {
	r := gin.New()
	r.Use(Logger(nil))
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
