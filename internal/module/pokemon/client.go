// Package pokemon shapes data from the PokeAPI species database.
package pokemon

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/omnidash/omnidash/internal/domain"
	"github.com/omnidash/omnidash/internal/fetch"
)

const (
	defaultLimit = 20

	// detailConcurrency caps parallel detail fetches so a long name list
	// cannot flood the upstream.
	detailConcurrency = 8
)

// Client fetches pokemon data. Safe for concurrent use.
type Client struct {
	baseURL string
	fetch   *fetch.Client
}

// NewClient creates a pokemon client against the given base URL.
func NewClient(f *fetch.Client, baseURL string) *Client {
	return &Client{baseURL: baseURL, fetch: f}
}

// PokemonList fetches one page of the species listing. Limit below 1
// defaults to 20; negative offsets clamp to 0.
func (c *Client) PokemonList(ctx context.Context, limit, offset int) (*domain.PokemonList, error) {
	if limit < 1 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var out domain.PokemonList
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/pokemon?"+params.Encode(), &out); err != nil {
		return nil, domain.Wrap(err, "fetch pokemon list")
	}
	return &out, nil
}

// PokemonByName fetches a single pokemon by name or numeric id.
func (c *Client) PokemonByName(ctx context.Context, idOrName string) (*domain.PokemonRecord, error) {
	idOrName = normalizeName(idOrName)
	if idOrName == "" {
		return nil, domain.NewValidation("pokemon name must not be empty")
	}

	var out domain.PokemonRecord
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/pokemon/"+url.PathEscape(idOrName), &out); err != nil {
		return nil, domain.Wrap(err, "fetch pokemon")
	}
	return &out, nil
}

// PokemonSpecies fetches the species-level record for a pokemon.
func (c *Client) PokemonSpecies(ctx context.Context, idOrName string) (*domain.PokemonSpeciesRecord, error) {
	idOrName = normalizeName(idOrName)
	if idOrName == "" {
		return nil, domain.NewValidation("pokemon name must not be empty")
	}

	var out domain.PokemonSpeciesRecord
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/pokemon-species/"+url.PathEscape(idOrName), &out); err != nil {
		return nil, domain.Wrap(err, "fetch pokemon species")
	}
	return &out, nil
}

// Types fetches the listing of all pokemon types.
func (c *Client) Types(ctx context.Context) (*domain.PokemonTypeList, error) {
	var out domain.PokemonTypeList
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/type", &out); err != nil {
		return nil, domain.Wrap(err, "fetch pokemon types")
	}
	return &out, nil
}

// PokemonByType fetches the pokemon belonging to one type.
func (c *Client) PokemonByType(ctx context.Context, typeName string) (*domain.PokemonTypeMembers, error) {
	typeName = normalizeName(typeName)
	if typeName == "" {
		return nil, domain.NewValidation("type name must not be empty")
	}

	var out domain.PokemonTypeMembers
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/type/"+url.PathEscape(typeName), &out); err != nil {
		return nil, domain.Wrap(err, "fetch pokemon by type")
	}
	return &out, nil
}

// PokemonDetails fetches full records for a list of names concurrently.
// Names whose fetch fails are dropped; the returned slice preserves the
// input order of the names that succeeded. It never returns an error.
func (c *Client) PokemonDetails(ctx context.Context, names []string) []domain.PokemonRecord {
	slots := make([]*domain.PokemonRecord, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailConcurrency)
	for i, name := range names {
		g.Go(func() error {
			rec, err := c.PokemonByName(gctx, name)
			if err == nil {
				slots[i] = rec
			}
			return nil
		})
	}
	_ = g.Wait() // branches never return errors

	out := make([]domain.PokemonRecord, 0, len(names))
	for _, rec := range slots {
		if rec != nil {
			out = append(out, *rec)
		}
	}
	return out
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
