package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// headerUserID carries the authenticated user's id, set by the gateway
// in front of this service.
const headerUserID = "X-User-ID"

// ListProductReviews handles GET /api/v1/products/:id/reviews?page=N
func (h *Handlers) ListProductReviews(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.badRequest(c, "invalid query parameter: page")
			return
		}
		page = parsed
	}

	reviewPage, err := h.repos.Reviews.ProductPage(c.Request.Context(), c.Param("id"), page)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, reviewPage)
}

// ListUserReviews handles GET /api/v1/users/:userId/reviews
func (h *Handlers) ListUserReviews(c *gin.Context) {
	reviews, err := h.repos.Reviews.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, reviews)
}

// ReviewEligibility handles GET /api/v1/products/:id/reviews/eligibility.
// Storefronts call it to decide whether to show the review form.
func (h *Handlers) ReviewEligibility(c *gin.Context) {
	userID := c.GetHeader(headerUserID)
	if userID == "" {
		h.badRequest(c, "missing "+headerUserID+" header")
		return
	}

	eligible, err := h.repos.Reviews.Eligible(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, gin.H{"eligible": eligible})
}

// CreateReview handles POST /api/v1/products/:id/reviews
func (h *Handlers) CreateReview(c *gin.Context) {
	userID := c.GetHeader(headerUserID)
	if userID == "" {
		h.badRequest(c, "missing "+headerUserID+" header")
		return
	}

	var req models.CreateReview
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	h.logger.Info("CreateReview called",
		zap.String("product_id", c.Param("id")), zap.String("user_id", userID))

	review, err := h.repos.Reviews.Create(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, review)
}

// DeleteReview handles DELETE /api/v1/reviews/:id
func (h *Handlers) DeleteReview(c *gin.Context) {
	userID := c.GetHeader(headerUserID)
	if userID == "" {
		h.badRequest(c, "missing "+headerUserID+" header")
		return
	}

	id := c.Param("id")
	if err := h.repos.Reviews.Delete(c.Request.Context(), id, userID); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, gin.H{"deleted": id})
}
