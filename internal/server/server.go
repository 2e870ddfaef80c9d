package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/handlers"
)

// Server represents the HTTP server.
type Server struct {
	srv     *http.Server
	router  *gin.Engine
	handler *handlers.Handlers
	config  *config.Config
	logger  *zap.Logger
}

// New creates a new server instance.
func New(h *handlers.Handlers, cfg *config.Config, logger *zap.Logger) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	s := &Server{
		router:  router,
		handler: h,
		config:  cfg,
		logger:  logger.Named("server"),
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

const headerRequestID = "X-Acme-Request-ID"

func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.router.Use(gin.Recovery())

	// Request ID middleware
	s.router.Use(func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Set("request_id", requestID)
		c.Next()
	})

	// Logging middleware
	s.router.Use(s.loggingMiddleware())

	// CORS middleware (if needed)
	s.router.Use(s.corsMiddleware())
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		s.logger.Info("request completed",
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("latency", latency.String()),
			zap.String("client", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}

func (s *Server) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-User-ID, X-Acme-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (s *Server) setupRoutes() {
	// Health check endpoints
	s.router.GET("/health", s.handler.Health)
	s.router.GET("/health/detailed", s.handler.HealthDetailed)
	s.router.GET("/ready", s.handler.Ready)
	s.router.GET("/live", s.handler.Live)

	v1 := s.router.Group("/api/v1")
	{
		// Stores
		v1.POST("/stores", s.handler.CreateStore)
		v1.GET("/stores/:storeId", s.handler.GetStore)
		v1.DELETE("/stores/:storeId", s.handler.DeleteStore)

		// Store-scoped catalog management
		v1.GET("/stores/:storeId/billboards", s.handler.ListBillboards)
		v1.POST("/stores/:storeId/billboards", s.handler.CreateBillboard)
		v1.GET("/stores/:storeId/categories", s.handler.ListCategories)
		v1.GET("/stores/:storeId/categories/gender/:gender", s.handler.ListCategoriesByGender)
		v1.POST("/stores/:storeId/categories", s.handler.CreateCategory)
		v1.GET("/stores/:storeId/colors", s.handler.ListColors)
		v1.POST("/stores/:storeId/colors", s.handler.CreateColor)
		v1.GET("/stores/:storeId/sizes", s.handler.ListSizes)
		v1.POST("/stores/:storeId/sizes", s.handler.CreateSize)
		v1.GET("/stores/:storeId/products", s.handler.ListProducts)
		v1.POST("/stores/:storeId/products", s.handler.CreateProduct)
		v1.GET("/stores/:storeId/orders", s.handler.ListOrders)
		v1.POST("/stores/:storeId/orders", s.handler.CreateOrder)

		// Revenue
		v1.GET("/stores/:storeId/revenue", s.handler.GetRevenue)
		v1.GET("/stores/:storeId/revenue/current-month", s.handler.GetCurrentMonthRevenue)
		v1.GET("/stores/:storeId/revenue/previous-month", s.handler.GetPreviousMonthRevenue)
		v1.GET("/stores/:storeId/revenue/date/:date", s.handler.GetRevenueForDate)
		v1.GET("/stores/:storeId/revenue/graph", s.handler.GetRevenueGraph)
		v1.GET("/stores/:storeId/sales", s.handler.GetSales)

		// Entity access by id
		v1.GET("/billboards", s.handler.ListAllBillboards)
		v1.GET("/billboards/:id", s.handler.GetBillboard)
		v1.PUT("/billboards/:id", s.handler.UpdateBillboard)
		v1.DELETE("/billboards/:id", s.handler.DeleteBillboard)
		v1.GET("/categories/:id", s.handler.GetCategory)
		v1.PUT("/categories/:id", s.handler.UpdateCategory)
		v1.DELETE("/categories/:id", s.handler.DeleteCategory)
		v1.GET("/colors/:id", s.handler.GetColor)
		v1.PUT("/colors/:id", s.handler.UpdateColor)
		v1.DELETE("/colors/:id", s.handler.DeleteColor)
		v1.GET("/sizes/:id", s.handler.GetSize)
		v1.PUT("/sizes/:id", s.handler.UpdateSize)
		v1.DELETE("/sizes/:id", s.handler.DeleteSize)
		v1.GET("/products/:id", s.handler.GetProduct)
		v1.PUT("/products/:id", s.handler.UpdateProduct)
		v1.DELETE("/products/:id", s.handler.DeleteProduct)

		// Orders
		v1.GET("/orders/:id", s.handler.GetOrder)
		v1.POST("/orders/:id/pay", s.handler.PayOrder)
		v1.POST("/orders/:id/deliver", s.handler.DeliverOrder)
		v1.DELETE("/orders/:id", s.handler.DeleteOrder)
		v1.GET("/users/:userId/orders/pending", s.handler.ListPendingOrders)
		v1.GET("/users/:userId/orders/delivered", s.handler.ListDeliveredOrders)

		// Reviews
		v1.GET("/products/:id/reviews", s.handler.ListProductReviews)
		v1.POST("/products/:id/reviews", s.handler.CreateReview)
		v1.GET("/products/:id/reviews/eligibility", s.handler.ReviewEligibility)
		v1.DELETE("/reviews/:id", s.handler.DeleteReview)
		v1.GET("/users/:userId/reviews", s.handler.ListUserReviews)

		// Password reset tokens
		v1.POST("/password-reset", s.handler.IssueResetToken)
		v1.POST("/password-reset/verify", s.handler.VerifyResetToken)
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.srv.Addr))
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.srv.Shutdown(ctx)
}
