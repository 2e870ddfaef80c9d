package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// GetRevenue handles GET /api/v1/stores/:storeId/revenue
func (h *Handlers) GetRevenue(c *gin.Context) {
	total, err := h.repos.Revenue.Total(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, gin.H{"total": total})
}

// GetCurrentMonthRevenue handles GET /api/v1/stores/:storeId/revenue/current-month
func (h *Handlers) GetCurrentMonthRevenue(c *gin.Context) {
	total, err := h.repos.Revenue.CurrentMonth(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, gin.H{"total": total})
}

// GetPreviousMonthRevenue handles GET /api/v1/stores/:storeId/revenue/previous-month
func (h *Handlers) GetPreviousMonthRevenue(c *gin.Context) {
	total, err := h.repos.Revenue.PreviousMonth(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, gin.H{"total": total})
}

// GetRevenueForDate handles GET /api/v1/stores/:storeId/revenue/date/:date
// with the date formatted YYYY-MM-DD.
func (h *Handlers) GetRevenueForDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		h.badRequest(c, "invalid date, expected YYYY-MM-DD")
		return
	}

	total, err := h.repos.Revenue.ForDate(c.Request.Context(), c.Param("storeId"), date)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, gin.H{"date": c.Param("date"), "total": total})
}

// GetRevenueGraph handles GET /api/v1/stores/:storeId/revenue/graph
func (h *Handlers) GetRevenueGraph(c *gin.Context) {
	series, err := h.repos.Revenue.Series(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, series)
}

// GetSales handles GET /api/v1/stores/:storeId/sales
func (h *Handlers) GetSales(c *gin.Context) {
	summary, err := h.repos.Sales.Summary(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, summary)
}
