// Package movies shapes movie data fetched through the credential-injecting
// proxy, falling back to a fixed demo catalog whenever the proxy path fails.
package movies

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/omnidash/omnidash/internal/domain"
	"github.com/omnidash/omnidash/internal/fetch"
)

const (
	posterBaseURL     = "https://image.tmdb.org/t/p/"
	defaultPosterSize = "w500"
	placeholderPoster = "https://via.placeholder.com/500x750?text=No+Poster"
)

// Client fetches movie data through the proxy. Safe for concurrent use.
type Client struct {
	proxyURL string
	fetch    *fetch.Client
	log      *slog.Logger
}

// NewClient creates a movie client against the given proxy base URL. A nil
// logger falls back to slog.Default.
func NewClient(f *fetch.Client, proxyURL string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{proxyURL: proxyURL, fetch: f, log: log}
}

// PopularMovies fetches one page of popular movies. Pages below 1 default
// to the first. On proxy-path failure the demo catalog is served as a
// single page; it never returns an error.
func (c *Client) PopularMovies(ctx context.Context, page int) *domain.MovieResponse {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var out domain.MovieResponse
	if err := c.fetch.GetJSON(ctx, c.proxyURL+"/api/movies/popular?"+params.Encode(), &out); err != nil {
		c.log.Warn("movie proxy unavailable, serving mock catalog", slog.Any("error", err))
		return &domain.MovieResponse{
			Page:         page,
			Results:      mockMovies,
			TotalPages:   1,
			TotalResults: len(mockMovies),
		}
	}
	return &out
}

// MovieByID fetches one movie. On proxy-path failure the demo catalog is
// consulted; ids absent from it yield a NotFound error.
func (c *Client) MovieByID(ctx context.Context, id int) (*domain.Movie, error) {
	if id < 1 {
		return nil, domain.NewValidation(fmt.Sprintf("invalid movie id %d", id))
	}

	var out domain.Movie
	if err := c.fetch.GetJSON(ctx, fmt.Sprintf("%s/api/movies/%d", c.proxyURL, id), &out); err != nil {
		c.log.Warn("movie proxy unavailable, consulting mock catalog",
			slog.Int("id", id), slog.Any("error", err))
		for i := range mockMovies {
			if mockMovies[i].ID == id {
				return &mockMovies[i], nil
			}
		}
		return nil, domain.NewNotFound(fmt.Sprintf("movie %d not found", id))
	}
	return &out, nil
}

// SearchMovies searches movies by title. On proxy-path failure the demo
// catalog is filtered by case-insensitive title substring; it never returns
// an error.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) *domain.MovieResponse {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))

	var out domain.MovieResponse
	if err := c.fetch.GetJSON(ctx, c.proxyURL+"/api/movies/search?"+params.Encode(), &out); err != nil {
		c.log.Warn("movie proxy unavailable, filtering mock catalog",
			slog.String("query", query), slog.Any("error", err))
		return singleMockPage(filterByTitle(query))
	}
	return &out
}

// Genres fetches the genre table, falling back to the fixed list.
func (c *Client) Genres(ctx context.Context) *domain.GenreList {
	var out domain.GenreList
	if err := c.fetch.GetJSON(ctx, c.proxyURL+"/api/movies/genres", &out); err != nil {
		c.log.Warn("movie proxy unavailable, serving fixed genre list", slog.Any("error", err))
		return &domain.GenreList{Genres: mockGenres}
	}
	return &out
}

// MoviesByGenre fetches the movies of one genre. The fallback filters the
// demo catalog by genre membership; it never returns an error.
func (c *Client) MoviesByGenre(ctx context.Context, genreID, page int) *domain.MovieResponse {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	rawURL := fmt.Sprintf("%s/api/movies/genre/%d?%s", c.proxyURL, genreID, params.Encode())

	var out domain.MovieResponse
	if err := c.fetch.GetJSON(ctx, rawURL, &out); err != nil {
		c.log.Warn("movie proxy unavailable, filtering mock catalog by genre",
			slog.Int("genre_id", genreID), slog.Any("error", err))
		return singleMockPage(filterByGenre(genreID))
	}
	return &out
}

// PosterURL builds the CDN URL for a poster path. Empty sizes default to
// w500; empty paths yield a placeholder image.
func PosterURL(path *string, size string) string {
	if path == nil || *path == "" {
		return placeholderPoster
	}
	if size == "" {
		size = defaultPosterSize
	}
	return posterBaseURL + size + *path
}

func filterByTitle(query string) []domain.Movie {
	q := strings.ToLower(query)
	matched := make([]domain.Movie, 0, len(mockMovies))
	for _, m := range mockMovies {
		if strings.Contains(strings.ToLower(m.Title), q) {
			matched = append(matched, m)
		}
	}
	return matched
}

func filterByGenre(genreID int) []domain.Movie {
	matched := make([]domain.Movie, 0, len(mockMovies))
	for _, m := range mockMovies {
		if slices.Contains(m.GenreIDs, genreID) {
			matched = append(matched, m)
		}
	}
	return matched
}

func singleMockPage(results []domain.Movie) *domain.MovieResponse {
	return &domain.MovieResponse{
		Page:         1,
		Results:      results,
		TotalPages:   1,
		TotalResults: len(results),
	}
}
