// Package news shapes news data fetched through the credential-injecting
// proxy, falling back to a fixed demo dataset whenever the proxy path fails.
package news

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/omnidash/omnidash/internal/domain"
	"github.com/omnidash/omnidash/internal/fetch"
)

const (
	defaultCategory = "general"
	defaultCountry  = "us"
)

// Client fetches news through the proxy. Safe for concurrent use.
type Client struct {
	proxyURL string
	fetch    *fetch.Client
	log      *slog.Logger
}

// NewClient creates a news client against the given proxy base URL. A nil
// logger falls back to slog.Default.
func NewClient(f *fetch.Client, proxyURL string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{proxyURL: proxyURL, fetch: f, log: log}
}

// TopHeadlines fetches the top headlines for a category and country,
// defaulting to general/us. Any proxy-path failure is logged and answered
// with the demo dataset; it never returns an error.
func (c *Client) TopHeadlines(ctx context.Context, category, country string) *domain.NewsResponse {
	if category == "" {
		category = defaultCategory
	}
	if country == "" {
		country = defaultCountry
	}

	params := url.Values{}
	params.Set("category", category)
	params.Set("country", country)

	var out domain.NewsResponse
	if err := c.fetch.GetJSON(ctx, c.proxyURL+"/api/news/top-headlines?"+params.Encode(), &out); err != nil {
		c.log.Warn("news proxy unavailable, serving mock headlines",
			slog.String("category", category), slog.Any("error", err))
		return mockResponse(mockArticles)
	}
	return &out
}

// SearchNews searches articles by query. On proxy-path failure the demo
// dataset is filtered by case-insensitive substring on title and
// description; it never returns an error.
func (c *Client) SearchNews(ctx context.Context, query string) *domain.NewsResponse {
	params := url.Values{}
	params.Set("q", query)

	var out domain.NewsResponse
	if err := c.fetch.GetJSON(ctx, c.proxyURL+"/api/news/search?"+params.Encode(), &out); err != nil {
		c.log.Warn("news proxy unavailable, filtering mock articles",
			slog.String("query", query), slog.Any("error", err))
		return mockResponse(filterMockArticles(query))
	}
	return &out
}

// NewsByCategory fetches the headlines of one category for the default
// country.
func (c *Client) NewsByCategory(ctx context.Context, category string) *domain.NewsResponse {
	return c.TopHeadlines(ctx, category, defaultCountry)
}

func filterMockArticles(query string) []domain.NewsArticle {
	q := strings.ToLower(query)
	matched := make([]domain.NewsArticle, 0, len(mockArticles))
	for _, a := range mockArticles {
		if strings.Contains(strings.ToLower(a.Title), q) {
			matched = append(matched, a)
			continue
		}
		if a.Description != nil && strings.Contains(strings.ToLower(*a.Description), q) {
			matched = append(matched, a)
		}
	}
	return matched
}
