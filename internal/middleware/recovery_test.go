package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRecovery_PanicAnswersJSON500(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(Recovery(newJSONLogger(&buf)))
	r.GET("/boom", func(c *gin.Context) {
		panic("unexpected provider payload")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"message":"internal server error"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestRecovery_LogsPanicWithStack(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(Recovery(newJSONLogger(&buf)))
	r.GET("/boom", func(c *gin.Context) {
		panic("kaput")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := buf.String()
	if !strings.Contains(out, "panic recovered") || !strings.Contains(out, "kaput") {
		t.Errorf("log missing panic record: %s", out)
	}
	if !strings.Contains(out, `"stack"`) {
		t.Errorf("log missing stack trace: %s", out)
	}
}

func TestRecovery_NoPanicPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(nil))
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "fine")
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "fine" {
		t.Fatalf("got %d %q, want 200 fine", w.Code, w.Body.String())
	}
}
