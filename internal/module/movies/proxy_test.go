package movies

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/omnidash/omnidash/internal/fetch"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func proxyRouter(p *Proxy) *gin.Engine {
	r := gin.New()
	r.GET("/api/movies/popular", p.Popular)
	r.GET("/api/movies/search", p.Search)
	r.GET("/api/movies/genres", p.Genres)
	r.GET("/api/movies/genre/:id", p.ByGenre)
	r.GET("/api/movies/:id", p.ByID)
	return r
}

func TestProxy_MissingKey_Returns400ExactMessage(t *testing.T) {
	r := proxyRouter(NewProxy(fetch.New(), "http://unused.invalid", "", nil))

	paths := []string{
		"/api/movies/popular",
		"/api/movies/search?q=matrix",
		"/api/movies/genres",
		"/api/movies/genre/18",
		"/api/movies/603",
	}
	for _, path := range paths {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, w.Code)
		}
		var body map[string]string
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "TMDB_API_KEY not configured on server" {
			t.Errorf("%s: error = %q", path, body["error"])
		}
	}
}

func TestProxy_SearchWithoutQuery_Returns400(t *testing.T) {
	r := proxyRouter(NewProxy(fetch.New(), "http://unused.invalid", "secret", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/movies/search", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != "q query param required" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestProxy_InjectsKeyAsQueryParam(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("api_key"); got != "secret" {
			t.Errorf("api_key = %q, want injected key", got)
		}
		if r.URL.Path != "/movie/popular" {
			t.Errorf("path = %q, want /movie/popular", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "1" {
			t.Errorf("page = %q, want 1 default", got)
		}
		w.Write([]byte(`{"page": 1, "results": [], "total_pages": 0, "total_results": 0}`))
	}))
	defer upstream.Close()

	r := proxyRouter(NewProxy(fetch.New(), upstream.URL, "secret", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/movies/popular", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestProxy_RouteShapes(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	r := proxyRouter(NewProxy(fetch.New(), upstream.URL, "secret", nil))

	send := func(path string) {
		t.Helper()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d", path, w.Code)
		}
	}

	send("/api/movies/search?q=matrix&page=3")
	if gotPath != "/search/movie" || gotQuery["query"][0] != "matrix" || gotQuery["page"][0] != "3" {
		t.Errorf("search relay = %s %v", gotPath, gotQuery)
	}

	send("/api/movies/genres")
	if gotPath != "/genre/movie/list" {
		t.Errorf("genres relay path = %q", gotPath)
	}

	send("/api/movies/genre/878?page=2")
	if gotPath != "/discover/movie" || gotQuery["with_genres"][0] != "878" || gotQuery["page"][0] != "2" {
		t.Errorf("genre relay = %s %v", gotPath, gotQuery)
	}

	send("/api/movies/603")
	if gotPath != "/movie/603" {
		t.Errorf("by-id relay path = %q", gotPath)
	}
}

func TestProxy_RelaysUpstreamStatusVerbatim(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status_code": 34, "status_message": "The resource you requested could not be found."}`))
	}))
	defer upstream.Close()

	r := proxyRouter(NewProxy(fetch.New(), upstream.URL, "secret", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/movies/999999", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 relayed", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status_code"] != float64(34) {
		t.Errorf("body = %v, want verbatim upstream body", body)
	}
}

func TestProxy_UpstreamUnreachable_OperationSpecific500s(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	r := proxyRouter(NewProxy(fetch.New(), upstream.URL, "secret", nil))

	tests := []struct {
		path string
		want string
	}{
		{"/api/movies/popular", "Failed to fetch popular movies"},
		{"/api/movies/search?q=matrix", "Failed to search movies"},
		{"/api/movies/genres", "Failed to fetch genres"},
		{"/api/movies/genre/18", "Failed to fetch movies by genre"},
		{"/api/movies/603", "Failed to fetch movie details"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("%s: status = %d, want 500", tt.path, w.Code)
		}
		var body map[string]string
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != tt.want {
			t.Errorf("%s: error = %q, want %q", tt.path, body["error"], tt.want)
		}
	}
}
