package pokemon

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/omnidash/omnidash/internal/pkg"
)

// Handler serves the pokemon API routes.
type Handler struct {
	client *Client
}

// NewHandler creates a Handler backed by the given client.
func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

type listQuery struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

type detailsQuery struct {
	Names string `form:"names" binding:"required"`
}

// List handles GET /api/v1/pokemon?limit=&offset=.
func (h *Handler) List(c *gin.Context) {
	var q listQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	list, err := h.client.PokemonList(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, list)
}

// Details handles GET /api/v1/pokemon/details?names=a,b,c. Names whose
// fetch fails are dropped from the result.
func (h *Handler) Details(c *gin.Context) {
	var q detailsQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	names := strings.Split(q.Names, ",")
	pkg.Success(c, h.client.PokemonDetails(c.Request.Context(), names))
}

// Get handles GET /api/v1/pokemon/:name.
func (h *Handler) Get(c *gin.Context) {
	rec, err := h.client.PokemonByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, rec)
}

// Species handles GET /api/v1/pokemon/:name/species.
func (h *Handler) Species(c *gin.Context) {
	rec, err := h.client.PokemonSpecies(c.Request.Context(), c.Param("name"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, rec)
}

// Types handles GET /api/v1/pokemon/types.
func (h *Handler) Types(c *gin.Context) {
	types, err := h.client.Types(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, types)
}

// ByType handles GET /api/v1/pokemon/type/:type.
func (h *Handler) ByType(c *gin.Context) {
	members, err := h.client.PokemonByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, members)
}
