// Package characters shapes data from the Rick and Morty character API.
package characters

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/omnidash/omnidash/internal/domain"
	"github.com/omnidash/omnidash/internal/fetch"
)

// Client fetches character data. Safe for concurrent use.
type Client struct {
	baseURL string
	fetch   *fetch.Client
}

// NewClient creates a character client against the given base URL.
func NewClient(f *fetch.Client, baseURL string) *Client {
	return &Client{baseURL: baseURL, fetch: f}
}

// Filter selects characters by attribute. Empty fields are omitted from the
// request entirely; no empty-string parameters are ever emitted.
type Filter struct {
	Name    string
	Status  string
	Species string
}

// Characters fetches one page of the character listing. Pages are 1-based;
// values below 1 fall back to the first page.
func (c *Client) Characters(ctx context.Context, page int) (*domain.CharacterPage, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var out domain.CharacterPage
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/character?"+params.Encode(), &out); err != nil {
		return nil, domain.Wrap(err, "fetch characters")
	}
	return &out, nil
}

// CharacterByID fetches a single character.
func (c *Client) CharacterByID(ctx context.Context, id int) (*domain.Character, error) {
	if id < 1 {
		return nil, domain.NewValidation(fmt.Sprintf("invalid character id %d", id))
	}

	var out domain.Character
	if err := c.fetch.GetJSON(ctx, fmt.Sprintf("%s/character/%d", c.baseURL, id), &out); err != nil {
		return nil, domain.Wrap(err, "fetch character")
	}
	return &out, nil
}

// FilterCharacters fetches characters matching the supplied filters. The
// query string carries exactly the non-empty filter keys.
func (c *Client) FilterCharacters(ctx context.Context, filter Filter) (*domain.CharacterPage, error) {
	params := url.Values{}
	if filter.Name != "" {
		params.Set("name", filter.Name)
	}
	if filter.Status != "" {
		params.Set("status", filter.Status)
	}
	if filter.Species != "" {
		params.Set("species", filter.Species)
	}

	var out domain.CharacterPage
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/character?"+params.Encode(), &out); err != nil {
		return nil, domain.Wrap(err, "filter characters")
	}
	return &out, nil
}
