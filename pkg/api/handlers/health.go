package handlers

import (
	"net/http"
	"time"

	"github.com/alertme/hub/pkg/alertme"
	"github.com/alertme/hub/pkg/api/types"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports whether the hub is up and how many nodes it knows
// about. There is no controller connectivity check here — unlike the
// teacher, this hub's modem is a collaborator the API never touches
// directly (§6); it always reports healthy once constructed.
type HealthHandler struct {
	hub *alertme.Hub
}

// NewHealthHandler creates a new health handler over hub.
func NewHealthHandler(hub *alertme.Hub) *HealthHandler {
	return &HealthHandler{hub: hub}
}

// Health handles GET /health and GET /api/v1/health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:    "healthy",
		NodeCount: len(h.hub.Registry.List()),
		Timestamp: time.Now(),
	})
}
