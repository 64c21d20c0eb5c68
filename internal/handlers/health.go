package handlers

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"dental-tourism-server/internal/config"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// HealthHandler serves the liveness probe.
type HealthHandler struct {
	Config *config.Config
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{Config: cfg}
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":      "ok",
		"version":     Version,
		"platform":    runtime.GOOS + "/" + runtime.GOARCH,
		"environment": h.Config.Environment,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
