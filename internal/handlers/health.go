package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// Health handles GET /health
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "catalog-service",
		Version: h.config.ServiceVersion,
	})
}

// HealthDetailed handles GET /health/detailed
func (h *Handlers) HealthDetailed(c *gin.Context) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	c.JSON(http.StatusOK, DetailedHealthResponse{
		Status:  "healthy",
		Service: "catalog-service",
		Version: h.config.ServiceVersion,
		Uptime:  time.Since(startTime).String(),
		Runtime: RuntimeInfo{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			NumCPU:       runtime.NumCPU(),
			MemAlloc:     memStats.Alloc,
			MemSys:       memStats.Sys,
		},
		Features: FeatureInfo{
			CatalogCacheEnabled: h.config.Features.EnableCatalogCache,
			RevenueCacheEnabled: h.config.Features.EnableRevenueCache,
		},
	})
}

// Ready handles GET /ready. Readiness covers the cache connection; a
// degraded cache still serves requests, so it is reported but not fatal.
func (h *Handlers) Ready(c *gin.Context) {
	cacheOK := h.cache.Ping(c.Request.Context()) == nil
	c.JSON(http.StatusOK, ReadyResponse{
		Ready: true,
		Cache: cacheOK,
	})
}

// Live handles GET /live
func (h *Handlers) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive": true,
	})
}

// Response types

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type DetailedHealthResponse struct {
	Status   string      `json:"status"`
	Service  string      `json:"service"`
	Version  string      `json:"version"`
	Uptime   string      `json:"uptime"`
	Runtime  RuntimeInfo `json:"runtime"`
	Features FeatureInfo `json:"features"`
}

type RuntimeInfo struct {
	GoVersion    string `json:"goVersion"`
	NumGoroutine int    `json:"numGoroutine"`
	NumCPU       int    `json:"numCpu"`
	MemAlloc     uint64 `json:"memAlloc"`
	MemSys       uint64 `json:"memSys"`
}

type FeatureInfo struct {
	CatalogCacheEnabled bool `json:"catalogCacheEnabled"`
	RevenueCacheEnabled bool `json:"revenueCacheEnabled"`
}

type ReadyResponse struct {
	Ready bool `json:"ready"`
	Cache bool `json:"cache"`
}
