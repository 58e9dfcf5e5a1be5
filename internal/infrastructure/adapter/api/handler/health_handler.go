package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guidy-app/joblight/internal/infrastructure/adapter/database"
)

// HealthChecker reports database health
type HealthChecker interface {
	Health(ctx context.Context) database.HealthStatus
}

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	db HealthChecker
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db HealthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live handles GET /health
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready handles GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := h.db.Health(ctx)
	if !status.Healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": status})
}
