package news

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/omnidash/omnidash/internal/fetch"
)

// Proxy relays news requests to the provider, injecting the server-held API
// key. The key travels in the X-Api-Key request header and never appears in
// any response.
type Proxy struct {
	upstreamURL string
	apiKey      string
	fetch       *fetch.Client
	log         *slog.Logger
}

// NewProxy creates the news relay. A nil logger falls back to slog.Default.
func NewProxy(f *fetch.Client, upstreamURL, apiKey string, log *slog.Logger) *Proxy {
	if log == nil {
		log = slog.Default()
	}
	return &Proxy{upstreamURL: upstreamURL, apiKey: apiKey, fetch: f, log: log}
}

// TopHeadlines handles GET /api/news/top-headlines?category=&country=.
func (p *Proxy) TopHeadlines(c *gin.Context) {
	if p.apiKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "NEWS_API_KEY not configured on server"})
		return
	}

	params := url.Values{}
	params.Set("category", c.DefaultQuery("category", defaultCategory))
	params.Set("country", c.DefaultQuery("country", defaultCountry))

	p.relay(c, p.upstreamURL+"/top-headlines?"+params.Encode())
}

// Search handles GET /api/news/search?q=.
func (p *Proxy) Search(c *gin.Context) {
	if p.apiKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "NEWS_API_KEY not configured on server"})
		return
	}
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query param required"})
		return
	}

	params := url.Values{}
	params.Set("q", q)

	p.relay(c, p.upstreamURL+"/everything?"+params.Encode())
}

func (p *Proxy) relay(c *gin.Context, rawURL string) {
	result, err := p.fetch.Relay(c.Request.Context(), rawURL, fetch.WithHeader("X-Api-Key", p.apiKey))
	if err != nil {
		p.log.Error("news provider unreachable", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}
	c.Data(result.Status, result.ContentType, result.Body)
}
