// Package exchange shapes data from the Frankfurter exchange-rate API.
package exchange

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/omnidash/omnidash/internal/domain"
	"github.com/omnidash/omnidash/internal/fetch"
)

const defaultBase = "USD"

// Client fetches exchange-rate data. Safe for concurrent use.
type Client struct {
	baseURL string
	fetch   *fetch.Client
}

// NewClient creates an exchange-rate client against the given base URL.
func NewClient(f *fetch.Client, baseURL string) *Client {
	return &Client{baseURL: baseURL, fetch: f}
}

// LatestRates fetches the latest rates for a base currency. Empty base
// defaults to USD.
func (c *Client) LatestRates(ctx context.Context, base string) (*domain.ExchangeRateSet, error) {
	params := url.Values{}
	params.Set("base", normalizeCurrency(base))

	var out domain.ExchangeRateSet
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/latest?"+params.Encode(), &out); err != nil {
		return nil, domain.Wrap(err, "fetch latest rates")
	}
	return &out, nil
}

// Currencies fetches the code → full-name table of supported currencies.
func (c *Client) Currencies(ctx context.Context) (map[string]string, error) {
	var out map[string]string
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/currencies", &out); err != nil {
		return nil, domain.Wrap(err, "fetch currencies")
	}
	return out, nil
}

// Convert converts an amount between two currencies. The converted value is
// returned in Rates under the target currency key.
func (c *Client) Convert(ctx context.Context, amount float64, from, to string) (*domain.ExchangeRateSet, error) {
	if amount < 0 {
		return nil, domain.NewValidation("amount must not be negative")
	}
	from, to = normalizeCurrency(from), normalizeCurrency(to)
	if from == to {
		return nil, domain.NewValidation("from and to currencies must differ")
	}

	params := url.Values{}
	params.Set("amount", fmt.Sprintf("%g", amount))
	params.Set("base", from)
	params.Set("symbols", to)

	var out domain.ExchangeRateSet
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/latest?"+params.Encode(), &out); err != nil {
		return nil, domain.Wrap(err, "convert currency")
	}
	return &out, nil
}

// HistoricalRates fetches the rates of a past date (YYYY-MM-DD).
func (c *Client) HistoricalRates(ctx context.Context, date, base string) (*domain.ExchangeRateSet, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, domain.NewValidation("date must not be empty")
	}

	params := url.Values{}
	params.Set("base", normalizeCurrency(base))

	var out domain.ExchangeRateSet
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/"+url.PathEscape(date)+"?"+params.Encode(), &out); err != nil {
		return nil, domain.Wrap(err, "fetch historical rates")
	}
	return &out, nil
}

// TimeSeries fetches rates over a date range (YYYY-MM-DD both ends).
func (c *Client) TimeSeries(ctx context.Context, start, end, base string) (*domain.ExchangeTimeSeries, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return nil, domain.NewValidation("start and end dates must not be empty")
	}

	params := url.Values{}
	params.Set("base", normalizeCurrency(base))

	rawURL := fmt.Sprintf("%s/%s..%s?%s", c.baseURL, url.PathEscape(start), url.PathEscape(end), params.Encode())

	var out domain.ExchangeTimeSeries
	if err := c.fetch.GetJSON(ctx, rawURL, &out); err != nil {
		return nil, domain.Wrap(err, "fetch rate time series")
	}
	return &out, nil
}

func normalizeCurrency(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return defaultBase
	}
	return s
}
