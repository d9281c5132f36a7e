// Package crypto shapes data from the CoinGecko market-data API.
package crypto

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/omnidash/omnidash/internal/domain"
	"github.com/omnidash/omnidash/internal/fetch"
)

const (
	defaultCurrency = "usd"
	defaultPerPage  = 20
	defaultDays     = 7
)

// Client fetches cryptocurrency market data. Safe for concurrent use.
type Client struct {
	baseURL string
	fetch   *fetch.Client
}

// NewClient creates a market-data client against the given base URL.
func NewClient(f *fetch.Client, baseURL string) *Client {
	return &Client{baseURL: baseURL, fetch: f}
}

// TopCryptos fetches the top assets by market cap, with 7-day sparklines.
// Empty currency defaults to usd; perPage below 1 defaults to 20.
func (c *Client) TopCryptos(ctx context.Context, currency string, perPage int) ([]domain.CryptoAsset, error) {
	if currency == "" {
		currency = defaultCurrency
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	params := url.Values{}
	params.Set("vs_currency", currency)
	params.Set("order", "market_cap_desc")
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", "1")
	params.Set("sparkline", "true")

	var out []domain.CryptoAsset
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/coins/markets?"+params.Encode(), &out); err != nil {
		return nil, domain.Wrap(err, "fetch crypto markets")
	}
	return out, nil
}

// CryptoByID fetches one asset's market record by its CoinGecko id.
func (c *Client) CryptoByID(ctx context.Context, id string) (*domain.CryptoAsset, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.NewValidation("crypto id must not be empty")
	}

	params := url.Values{}
	params.Set("vs_currency", defaultCurrency)
	params.Set("ids", id)
	params.Set("sparkline", "true")

	var out []domain.CryptoAsset
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/coins/markets?"+params.Encode(), &out); err != nil {
		return nil, domain.Wrap(err, "fetch crypto asset")
	}
	if len(out) == 0 {
		return nil, domain.NewNotFound(fmt.Sprintf("crypto asset %q not found", id))
	}
	return &out[0], nil
}

// PriceHistory fetches an asset's daily price series. Days below 1 defaults
// to a week.
func (c *Client) PriceHistory(ctx context.Context, id string, days int) (*domain.MarketChart, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.NewValidation("crypto id must not be empty")
	}
	if days < 1 {
		days = defaultDays
	}

	params := url.Values{}
	params.Set("vs_currency", defaultCurrency)
	params.Set("days", strconv.Itoa(days))

	var out domain.MarketChart
	rawURL := c.baseURL + "/coins/" + url.PathEscape(id) + "/market_chart?" + params.Encode()
	if err := c.fetch.GetJSON(ctx, rawURL, &out); err != nil {
		return nil, domain.Wrap(err, "fetch price history")
	}
	return &out, nil
}

// SearchCryptos searches assets by name or symbol.
func (c *Client) SearchCryptos(ctx context.Context, query string) (*domain.CryptoSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidation("search query must not be empty")
	}

	params := url.Values{}
	params.Set("query", query)

	var out domain.CryptoSearchResult
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/search?"+params.Encode(), &out); err != nil {
		return nil, domain.Wrap(err, "search crypto assets")
	}
	return &out, nil
}
