package characters

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/omnidash/omnidash/internal/domain"
	"github.com/omnidash/omnidash/internal/pkg"
)

// Handler serves the character API routes.
type Handler struct {
	client *Client
}

// NewHandler creates a Handler backed by the given client.
func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

type listQuery struct {
	Page int `form:"page,default=1"`
}

type filterQuery struct {
	Name    string `form:"name"`
	Status  string `form:"status"`
	Species string `form:"species"`
}

// List handles GET /api/v1/characters?page=.
func (h *Handler) List(c *gin.Context) {
	var q listQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	page, err := h.client.Characters(c.Request.Context(), q.Page)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, page)
}

// Get handles GET /api/v1/characters/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pkg.Error(c, domain.NewValidation("character id must be numeric"))
		return
	}

	char, err := h.client.CharacterByID(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, char)
}

// Filter handles GET /api/v1/characters/filter?name=&status=&species=.
func (h *Handler) Filter(c *gin.Context) {
	var q filterQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	page, err := h.client.FilterCharacters(c.Request.Context(), Filter{
		Name:    q.Name,
		Status:  q.Status,
		Species: q.Species,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, page)
}
