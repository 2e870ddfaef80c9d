package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// ListProducts handles GET /api/v1/stores/:storeId/products.
// Supported query parameters: categoryId, minPrice, maxPrice, featured,
// page, perPage.
func (h *Handlers) ListProducts(c *gin.Context) {
	filter, err := productFilterFromQuery(c)
	if err != nil {
		h.badRequest(c, err.Error())
		return
	}

	products, err := h.repos.Products.ListByStore(c.Request.Context(), c.Param("storeId"), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, products)
}

func productFilterFromQuery(c *gin.Context) (models.ProductFilter, error) {
	var filter models.ProductFilter

	filter.CategoryID = c.Query("categoryId")

	if raw := c.Query("minPrice"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, errInvalidQuery("minPrice")
		}
		filter.MinPrice = &price
	}
	if raw := c.Query("maxPrice"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, errInvalidQuery("maxPrice")
		}
		filter.MaxPrice = &price
	}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errInvalidQuery("featured")
		}
		filter.Featured = &featured
	}
	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return filter, errInvalidQuery("page")
		}
		filter.Page = page
	}
	if raw := c.Query("perPage"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			return filter, errInvalidQuery("perPage")
		}
		filter.PerPage = perPage
	}
	return filter, nil
}

type queryError string

func (e queryError) Error() string { return "invalid query parameter: " + string(e) }

func errInvalidQuery(param string) error { return queryError(param) }

// GetProduct handles GET /api/v1/products/:id
func (h *Handlers) GetProduct(c *gin.Context) {
	product, err := h.repos.Products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, product)
}

// CreateProduct handles POST /api/v1/stores/:storeId/products
func (h *Handlers) CreateProduct(c *gin.Context) {
	var req models.CreateProduct
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	h.logger.Info("CreateProduct called",
		zap.String("store_id", c.Param("storeId")), zap.String("name", req.Name))

	product, err := h.repos.Products.Create(c.Request.Context(), c.Param("storeId"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, product)
}

// UpdateProduct handles PUT /api/v1/products/:id
func (h *Handlers) UpdateProduct(c *gin.Context) {
	var req models.CreateProduct
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	product, err := h.repos.Products.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, product)
}

// DeleteProduct handles DELETE /api/v1/products/:id
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	h.logger.Info("DeleteProduct called", zap.String("product_id", id))

	if err := h.repos.Products.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, gin.H{"deleted": id})
}
