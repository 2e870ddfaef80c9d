package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
)

// Password resets are finished by the users service; this service only
// issues and verifies the short-lived token, since it owns the cache.

type ResetTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// IssueResetToken handles POST /api/v1/password-reset
func (h *Handlers) IssueResetToken(c *gin.Context) {
	var req ResetTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	token := uuid.NewString()
	if err := cache.SetPasswordResetToken(c.Request.Context(), h.cache, req.Email, token); err != nil {
		h.logger.Error("failed to store reset token", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Success: false,
			Error:   "token storage unavailable",
		})
		return
	}

	h.logger.Info("reset token issued", zap.String("email", req.Email))
	created(c, gin.H{"token": token})
}

type VerifyResetTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

// VerifyResetToken handles POST /api/v1/password-reset/verify. A valid
// token is consumed; it cannot be used twice.
func (h *Handlers) VerifyResetToken(c *gin.Context) {
	var req VerifyResetTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	stored, err := cache.GetPasswordResetToken(c.Request.Context(), h.cache, req.Email)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Success: false,
				Error:   "token expired or not issued",
			})
			return
		}
		h.logger.Error("failed to read reset token", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Success: false,
			Error:   "token storage unavailable",
		})
		return
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(req.Token)) != 1 {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Success: false,
			Error:   "invalid token",
		})
		return
	}

	if err := cache.DeletePasswordResetToken(c.Request.Context(), h.cache, req.Email); err != nil {
		h.logger.Warn("failed to consume reset token", zap.Error(err))
	}
	ok(c, gin.H{"valid": true})
}
