package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/apperrors"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/repository"
)

// Handlers holds all HTTP handlers for the catalog service.
type Handlers struct {
	repos  *repository.Repositories
	cache  cache.Store
	config *config.Config
	logger *zap.Logger
}

// NewHandlers creates a new handlers instance.
func NewHandlers(repos *repository.Repositories, c cache.Store, cfg *config.Config, logger *zap.Logger) *Handlers {
	return &Handlers{
		repos:  repos,
		cache:  c,
		config: cfg,
		logger: logger.Named("handlers"),
	}
}

// handleError maps repository errors onto HTTP statuses.
func (h *Handlers) handleError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
	default:
		h.logger.Error("request failed",
			zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "Internal server error",
		})
	}
}

func (h *Handlers) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   msg,
	})
}

// Response envelopes.

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, DataResponse{Success: true, Data: data})
}

func created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, DataResponse{Success: true, Data: data})
}
