package crypto

import (
	"github.com/gin-gonic/gin"

	"github.com/omnidash/omnidash/internal/pkg"
)

// Handler serves the cryptocurrency API routes.
type Handler struct {
	client *Client
}

// NewHandler creates a Handler backed by the given client.
func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

type listQuery struct {
	Currency string `form:"currency"`
	PerPage  int    `form:"per_page,default=20" binding:"omitempty,min=1,max=250"`
}

type historyQuery struct {
	Days int `form:"days,default=7" binding:"omitempty,min=1,max=365"`
}

type searchQuery struct {
	Q string `form:"q" binding:"required"`
}

// List handles GET /api/v1/cryptos?currency=&per_page=.
func (h *Handler) List(c *gin.Context) {
	var q listQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	assets, err := h.client.TopCryptos(c.Request.Context(), q.Currency, q.PerPage)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, assets)
}

// Get handles GET /api/v1/cryptos/:id.
func (h *Handler) Get(c *gin.Context) {
	asset, err := h.client.CryptoByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, asset)
}

// History handles GET /api/v1/cryptos/:id/history?days=.
func (h *Handler) History(c *gin.Context) {
	var q historyQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	chart, err := h.client.PriceHistory(c.Request.Context(), c.Param("id"), q.Days)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, chart)
}

// Search handles GET /api/v1/cryptos/search?q=.
func (h *Handler) Search(c *gin.Context) {
	var q searchQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	result, err := h.client.SearchCryptos(c.Request.Context(), q.Q)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, result)
}
