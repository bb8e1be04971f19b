package handlers

import (
	"context"
	"net/http"

	"github.com/alertme/hub/pkg/alertme"
	"github.com/alertme/hub/pkg/api/types"
	"github.com/gin-gonic/gin"
)

// DiscoveryHandler starts and reports on the hub's discovery driver.
type DiscoveryHandler struct {
	hub *alertme.Hub
}

// NewDiscoveryHandler creates a new discovery handler over hub.
func NewDiscoveryHandler(hub *alertme.Hub) *DiscoveryHandler {
	return &DiscoveryHandler{hub: hub}
}

// StartDiscovery handles POST /api/v1/discovery/start. It is a no-op if a
// pass is already running, matching Discovery.Start's own re-entrancy rule.
func (h *DiscoveryHandler) StartDiscovery(c *gin.Context) {
	// A discovery pass outlives the HTTP request that triggers it, so it is
	// started against a background context, not the request's.
	h.hub.StartDiscovery(context.Background())
	c.JSON(http.StatusOK, types.StartDiscoveryResponse{Status: "started"})
}

// Status handles GET /api/v1/discovery/status.
func (h *DiscoveryHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, types.DiscoveryStatusResponse{Running: h.hub.Discovery.IsRunning()})
}
