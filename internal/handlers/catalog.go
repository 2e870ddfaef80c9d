package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// Billboards

// ListAllBillboards handles GET /api/v1/billboards
func (h *Handlers) ListAllBillboards(c *gin.Context) {
	billboards, err := h.repos.Billboards.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, billboards)
}

// ListBillboards handles GET /api/v1/stores/:storeId/billboards
func (h *Handlers) ListBillboards(c *gin.Context) {
	billboards, err := h.repos.Billboards.ListByStore(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, billboards)
}

// GetBillboard handles GET /api/v1/billboards/:id
func (h *Handlers) GetBillboard(c *gin.Context) {
	billboard, err := h.repos.Billboards.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, billboard)
}

// CreateBillboard handles POST /api/v1/stores/:storeId/billboards
func (h *Handlers) CreateBillboard(c *gin.Context) {
	var req models.CreateBillboard
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	billboard, err := h.repos.Billboards.Create(c.Request.Context(), c.Param("storeId"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, billboard)
}

// UpdateBillboard handles PUT /api/v1/billboards/:id
func (h *Handlers) UpdateBillboard(c *gin.Context) {
	var req models.CreateBillboard
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	billboard, err := h.repos.Billboards.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, billboard)
}

// DeleteBillboard handles DELETE /api/v1/billboards/:id
func (h *Handlers) DeleteBillboard(c *gin.Context) {
	id := c.Param("id")
	if err := h.repos.Billboards.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, gin.H{"deleted": id})
}

// Categories

// ListCategories handles GET /api/v1/stores/:storeId/categories
func (h *Handlers) ListCategories(c *gin.Context) {
	categories, err := h.repos.Categories.ListByStore(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, categories)
}

// ListCategoriesByGender handles GET /api/v1/stores/:storeId/categories/gender/:gender
func (h *Handlers) ListCategoriesByGender(c *gin.Context) {
	categories, err := h.repos.Categories.ListByGender(c.Request.Context(),
		c.Param("storeId"), c.Param("gender"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, categories)
}

// GetCategory handles GET /api/v1/categories/:id
func (h *Handlers) GetCategory(c *gin.Context) {
	category, err := h.repos.Categories.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, category)
}

// CreateCategory handles POST /api/v1/stores/:storeId/categories
func (h *Handlers) CreateCategory(c *gin.Context) {
	var req models.CreateCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	h.logger.Info("CreateCategory called",
		zap.String("store_id", c.Param("storeId")), zap.String("name", req.Name))

	category, err := h.repos.Categories.Create(c.Request.Context(), c.Param("storeId"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, category)
}

// UpdateCategory handles PUT /api/v1/categories/:id
func (h *Handlers) UpdateCategory(c *gin.Context) {
	var req models.CreateCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	category, err := h.repos.Categories.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, category)
}

// DeleteCategory handles DELETE /api/v1/categories/:id
func (h *Handlers) DeleteCategory(c *gin.Context) {
	id := c.Param("id")
	if err := h.repos.Categories.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, gin.H{"deleted": id})
}

// Colors

// ListColors handles GET /api/v1/stores/:storeId/colors
func (h *Handlers) ListColors(c *gin.Context) {
	colors, err := h.repos.Colors.ListByStore(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, colors)
}

// GetColor handles GET /api/v1/colors/:id
func (h *Handlers) GetColor(c *gin.Context) {
	color, err := h.repos.Colors.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, color)
}

// CreateColor handles POST /api/v1/stores/:storeId/colors
func (h *Handlers) CreateColor(c *gin.Context) {
	var req models.CreateColor
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	color, err := h.repos.Colors.Create(c.Request.Context(), c.Param("storeId"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, color)
}

// UpdateColor handles PUT /api/v1/colors/:id
func (h *Handlers) UpdateColor(c *gin.Context) {
	var req models.CreateColor
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	color, err := h.repos.Colors.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, color)
}

// DeleteColor handles DELETE /api/v1/colors/:id
func (h *Handlers) DeleteColor(c *gin.Context) {
	id := c.Param("id")
	if err := h.repos.Colors.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, gin.H{"deleted": id})
}

// Sizes

// ListSizes handles GET /api/v1/stores/:storeId/sizes
func (h *Handlers) ListSizes(c *gin.Context) {
	sizes, err := h.repos.Sizes.ListByStore(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, sizes)
}

// GetSize handles GET /api/v1/sizes/:id
func (h *Handlers) GetSize(c *gin.Context) {
	size, err := h.repos.Sizes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, size)
}

// CreateSize handles POST /api/v1/stores/:storeId/sizes
func (h *Handlers) CreateSize(c *gin.Context) {
	var req models.CreateSize
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	size, err := h.repos.Sizes.Create(c.Request.Context(), c.Param("storeId"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, size)
}

// UpdateSize handles PUT /api/v1/sizes/:id
func (h *Handlers) UpdateSize(c *gin.Context) {
	var req models.CreateSize
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	size, err := h.repos.Sizes.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, size)
}

// DeleteSize handles DELETE /api/v1/sizes/:id
func (h *Handlers) DeleteSize(c *gin.Context) {
	id := c.Param("id")
	if err := h.repos.Sizes.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, gin.H{"deleted": id})
}
