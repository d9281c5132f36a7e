package exchange

import (
	"github.com/gin-gonic/gin"

	"github.com/omnidash/omnidash/internal/pkg"
)

// Handler serves the exchange-rate API routes.
type Handler struct {
	client *Client
}

// NewHandler creates a Handler backed by the given client.
func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

type ratesQuery struct {
	Base string `form:"base"`
}

type convertQuery struct {
	Amount *float64 `form:"amount" binding:"required"`
	From   string   `form:"from" binding:"required"`
	To     string   `form:"to" binding:"required"`
}

type historicalQuery struct {
	Date string `form:"date" binding:"required"`
	Base string `form:"base"`
}

type seriesQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
	Base  string `form:"base"`
}

// Rates handles GET /api/v1/exchange/rates?base=.
func (h *Handler) Rates(c *gin.Context) {
	var q ratesQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	rates, err := h.client.LatestRates(c.Request.Context(), q.Base)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, rates)
}

// Currencies handles GET /api/v1/exchange/currencies.
func (h *Handler) Currencies(c *gin.Context) {
	currencies, err := h.client.Currencies(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, currencies)
}

// Convert handles GET /api/v1/exchange/convert?amount=&from=&to=.
func (h *Handler) Convert(c *gin.Context) {
	var q convertQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	result, err := h.client.Convert(c.Request.Context(), *q.Amount, q.From, q.To)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, result)
}

// Historical handles GET /api/v1/exchange/historical?date=&base=.
func (h *Handler) Historical(c *gin.Context) {
	var q historicalQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	rates, err := h.client.HistoricalRates(c.Request.Context(), q.Date, q.Base)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, rates)
}

// Series handles GET /api/v1/exchange/series?start=&end=&base=.
func (h *Handler) Series(c *gin.Context) {
	var q seriesQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	series, err := h.client.TimeSeries(c.Request.Context(), q.Start, q.End, q.Base)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, series)
}
