package movies

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/omnidash/omnidash/internal/fetch"
)

// Proxy relays movie requests to the provider, injecting the server-held
// API key as the api_key query parameter. The key never appears in any
// response.
type Proxy struct {
	upstreamURL string
	apiKey      string
	fetch       *fetch.Client
	log         *slog.Logger
}

// NewProxy creates the movie relay. A nil logger falls back to slog.Default.
func NewProxy(f *fetch.Client, upstreamURL, apiKey string, log *slog.Logger) *Proxy {
	if log == nil {
		log = slog.Default()
	}
	return &Proxy{upstreamURL: upstreamURL, apiKey: apiKey, fetch: f, log: log}
}

// Popular handles GET /api/movies/popular?page=.
func (p *Proxy) Popular(c *gin.Context) {
	if !p.keyConfigured(c) {
		return
	}

	params := p.keyedParams()
	params.Set("page", c.DefaultQuery("page", "1"))

	p.relay(c, "/movie/popular?"+params.Encode(), "Failed to fetch popular movies")
}

// Search handles GET /api/movies/search?q=&page=.
func (p *Proxy) Search(c *gin.Context) {
	if !p.keyConfigured(c) {
		return
	}
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query param required"})
		return
	}

	params := p.keyedParams()
	params.Set("query", q)
	params.Set("page", c.DefaultQuery("page", "1"))

	p.relay(c, "/search/movie?"+params.Encode(), "Failed to search movies")
}

// ByID handles GET /api/movies/:id.
func (p *Proxy) ByID(c *gin.Context) {
	if !p.keyConfigured(c) {
		return
	}

	params := p.keyedParams()

	p.relay(c, "/movie/"+url.PathEscape(c.Param("id"))+"?"+params.Encode(), "Failed to fetch movie details")
}

// Genres handles GET /api/movies/genres.
func (p *Proxy) Genres(c *gin.Context) {
	if !p.keyConfigured(c) {
		return
	}

	p.relay(c, "/genre/movie/list?"+p.keyedParams().Encode(), "Failed to fetch genres")
}

// ByGenre handles GET /api/movies/genre/:id?page=.
func (p *Proxy) ByGenre(c *gin.Context) {
	if !p.keyConfigured(c) {
		return
	}

	params := p.keyedParams()
	params.Set("with_genres", c.Param("id"))
	params.Set("page", c.DefaultQuery("page", "1"))

	p.relay(c, "/discover/movie?"+params.Encode(), "Failed to fetch movies by genre")
}

func (p *Proxy) keyConfigured(c *gin.Context) bool {
	if p.apiKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "TMDB_API_KEY not configured on server"})
		return false
	}
	return true
}

func (p *Proxy) keyedParams() url.Values {
	params := url.Values{}
	params.Set("api_key", p.apiKey)
	return params
}

func (p *Proxy) relay(c *gin.Context, pathAndQuery, failureMessage string) {
	result, err := p.fetch.Relay(c.Request.Context(), p.upstreamURL+pathAndQuery)
	if err != nil {
		p.log.Error("movie provider unreachable", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMessage})
		return
	}
	c.Data(result.Status, result.ContentType, result.Body)
}
