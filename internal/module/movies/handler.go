package movies

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/omnidash/omnidash/internal/domain"
	"github.com/omnidash/omnidash/internal/pkg"
)

// Handler serves the movie API routes on the versioned surface.
type Handler struct {
	client *Client
}

// NewHandler creates a Handler backed by the given client.
func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

type pageQuery struct {
	Page int `form:"page,default=1" binding:"omitempty,min=1"`
}

type searchQuery struct {
	Q    string `form:"q" binding:"required"`
	Page int    `form:"page,default=1" binding:"omitempty,min=1"`
}

// Popular handles GET /api/v1/movies/popular?page=.
func (h *Handler) Popular(c *gin.Context) {
	var q pageQuery
	if !pkg.BindQuery(c, &q) {
		return
	}
	pkg.Success(c, h.client.PopularMovies(c.Request.Context(), q.Page))
}

// Get handles GET /api/v1/movies/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pkg.Error(c, domain.NewValidation("movie id must be numeric"))
		return
	}

	movie, err := h.client.MovieByID(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, movie)
}

// Search handles GET /api/v1/movies/search?q=&page=.
func (h *Handler) Search(c *gin.Context) {
	var q searchQuery
	if !pkg.BindQuery(c, &q) {
		return
	}
	pkg.Success(c, h.client.SearchMovies(c.Request.Context(), q.Q, q.Page))
}

// Genres handles GET /api/v1/movies/genres.
func (h *Handler) Genres(c *gin.Context) {
	pkg.Success(c, h.client.Genres(c.Request.Context()))
}

// ByGenre handles GET /api/v1/movies/genre/:id?page=.
func (h *Handler) ByGenre(c *gin.Context) {
	genreID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pkg.Error(c, domain.NewValidation("genre id must be numeric"))
		return
	}

	var q pageQuery
	if !pkg.BindQuery(c, &q) {
		return
	}
	pkg.Success(c, h.client.MoviesByGenre(c.Request.Context(), genreID, q.Page))
}
