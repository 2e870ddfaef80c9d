package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// CreateStore handles POST /api/v1/stores
func (h *Handlers) CreateStore(c *gin.Context) {
	var req models.CreateStore
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	h.logger.Info("CreateStore called", zap.String("name", req.Name))

	store, err := h.repos.Stores.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, store)
}

// GetStore handles GET /api/v1/stores/:storeId
func (h *Handlers) GetStore(c *gin.Context) {
	store, err := h.repos.Stores.GetByID(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, store)
}

// DeleteStore handles DELETE /api/v1/stores/:storeId
func (h *Handlers) DeleteStore(c *gin.Context) {
	storeID := c.Param("storeId")

	h.logger.Info("DeleteStore called", zap.String("store_id", storeID))

	if err := h.repos.Stores.Delete(c.Request.Context(), storeID); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, gin.H{"deleted": storeID})
}
