package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	backend := repository.NewMemoryBackend()
	store := cache.NewMemoryStore()
	coord := cache.NewCoordinator(store, zap.NewNop())
	repos := repository.New(backend.Stores(), store, coord, zap.NewNop())
	cfg := &config.Config{ServiceName: "catalog-service", ServiceVersion: "test"}

	h := NewHandlers(repos, store, cfg, zap.NewNop())

	router := gin.New()
	router.GET("/health", h.Health)
	router.POST("/api/v1/stores", h.CreateStore)
	router.GET("/api/v1/stores/:storeId", h.GetStore)
	router.POST("/api/v1/stores/:storeId/products", h.CreateProduct)
	router.GET("/api/v1/products/:id", h.GetProduct)
	router.GET("/api/v1/products/:id/reviews", h.ListProductReviews)
	router.POST("/api/v1/password-reset", h.IssueResetToken)
	router.POST("/api/v1/password-reset/verify", h.VerifyResetToken)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Fatalf("expected healthy, got %q", resp.Status)
	}
}

func TestCreateAndGetStore(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/stores", gin.H{
		"name":   "acme outlet",
		"userId": "u1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var createResp struct {
		Success bool `json:"success"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &createResp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !createResp.Success || createResp.Data.ID == "" {
		t.Fatalf("unexpected create response: %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/stores/"+createResp.Data.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCreateStoreValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/stores", gin.H{"name": "no user"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestMissingProductReturns404(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/products/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Fatal("error responses must not report success")
	}
}

func TestReviewPageQueryValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/products/p1/reviews?page=zero", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/password-reset", gin.H{
		"email": "user@shop.test",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var issued struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &issued); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if issued.Data.Token == "" {
		t.Fatal("expected a token")
	}

	// Wrong token is rejected.
	w = doJSON(t, router, http.MethodPost, "/api/v1/password-reset/verify", gin.H{
		"email": "user@shop.test",
		"token": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	// Right token verifies once.
	w = doJSON(t, router, http.MethodPost, "/api/v1/password-reset/verify", gin.H{
		"email": "user@shop.test",
		"token": issued.Data.Token,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// And never twice.
	w = doJSON(t, router, http.MethodPost, "/api/v1/password-reset/verify", gin.H{
		"email": "user@shop.test",
		"token": issued.Data.Token,
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 on reuse, got %d", w.Code)
	}
}
