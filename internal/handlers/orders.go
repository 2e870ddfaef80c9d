package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// ListOrders handles GET /api/v1/stores/:storeId/orders
func (h *Handlers) ListOrders(c *gin.Context) {
	orders, err := h.repos.Orders.ListByStore(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, orders)
}

// ListPendingOrders handles GET /api/v1/users/:userId/orders/pending
func (h *Handlers) ListPendingOrders(c *gin.Context) {
	orders, err := h.repos.Orders.ListPending(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, orders)
}

// ListDeliveredOrders handles GET /api/v1/users/:userId/orders/delivered
func (h *Handlers) ListDeliveredOrders(c *gin.Context) {
	orders, err := h.repos.Orders.ListDelivered(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, orders)
}

// GetOrder handles GET /api/v1/orders/:id
func (h *Handlers) GetOrder(c *gin.Context) {
	order, err := h.repos.Orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, order)
}

// CreateOrder handles POST /api/v1/stores/:storeId/orders
func (h *Handlers) CreateOrder(c *gin.Context) {
	var req models.CreateOrder
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	h.logger.Info("CreateOrder called",
		zap.String("store_id", c.Param("storeId")),
		zap.String("user_id", req.UserID),
		zap.Int("items", len(req.Items)))

	order, err := h.repos.Orders.Create(c.Request.Context(), c.Param("storeId"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, order)
}

// PayOrderRequest carries the shipping details recorded at payment time.
type PayOrderRequest struct {
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
}

// PayOrder handles POST /api/v1/orders/:id/pay
func (h *Handlers) PayOrder(c *gin.Context) {
	var req PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	h.logger.Info("PayOrder called", zap.String("order_id", c.Param("id")))

	order, err := h.repos.Orders.MarkPaid(c.Request.Context(), c.Param("id"), req.Address, req.Phone)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, order)
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver
func (h *Handlers) DeliverOrder(c *gin.Context) {
	order, err := h.repos.Orders.MarkDelivered(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, order)
}

// DeleteOrder handles DELETE /api/v1/orders/:id
func (h *Handlers) DeleteOrder(c *gin.Context) {
	id := c.Param("id")

	h.logger.Info("DeleteOrder called", zap.String("order_id", id))

	if err := h.repos.Orders.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, gin.H{"deleted": id})
}
