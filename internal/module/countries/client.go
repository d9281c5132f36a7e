// Package countries shapes data from the REST Countries database.
package countries

import (
	"context"
	"net/url"
	"strings"

	"github.com/omnidash/omnidash/internal/domain"
	"github.com/omnidash/omnidash/internal/fetch"
)

// fieldProjection is requested on every call so responses stay small and
// stable regardless of what the upstream adds to its full records.
const fieldProjection = "name,capital,region,subregion,population,flags,currencies,languages,area,cca3"

// Client fetches country data. Safe for concurrent use.
type Client struct {
	baseURL string
	fetch   *fetch.Client
}

// NewClient creates a country client against the given base URL.
func NewClient(f *fetch.Client, baseURL string) *Client {
	return &Client{baseURL: baseURL, fetch: f}
}

// AllCountries fetches every country record.
func (c *Client) AllCountries(ctx context.Context) ([]domain.Country, error) {
	return c.list(ctx, "/all")
}

// CountryByCode fetches the countries matching an alpha code (cca2/cca3).
func (c *Client) CountryByCode(ctx context.Context, code string) ([]domain.Country, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewValidation("country code must not be empty")
	}
	return c.list(ctx, "/alpha/"+url.PathEscape(code))
}

// SearchCountries fetches the countries whose name matches the query.
func (c *Client) SearchCountries(ctx context.Context, name string) ([]domain.Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidation("country name must not be empty")
	}
	return c.list(ctx, "/name/"+url.PathEscape(name))
}

// CountriesByRegion fetches the countries of one region.
func (c *Client) CountriesByRegion(ctx context.Context, region string) ([]domain.Country, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return nil, domain.NewValidation("region must not be empty")
	}
	return c.list(ctx, "/region/"+url.PathEscape(region))
}

func (c *Client) list(ctx context.Context, path string) ([]domain.Country, error) {
	params := url.Values{}
	params.Set("fields", fieldProjection)

	var out []domain.Country
	if err := c.fetch.GetJSON(ctx, c.baseURL+path+"?"+params.Encode(), &out); err != nil {
		return nil, domain.Wrap(err, "fetch countries")
	}
	return out, nil
}
