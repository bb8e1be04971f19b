package handlers

import (
	"net/http"

	"github.com/alertme/hub/pkg/alertme"
	"github.com/alertme/hub/pkg/api/types"
	"github.com/gin-gonic/gin"
)

// NodesHandler serves read-only snapshots of the node registry.
type NodesHandler struct {
	hub *alertme.Hub
}

// NewNodesHandler creates a new nodes handler over hub.
func NewNodesHandler(hub *alertme.Hub) *NodesHandler {
	return &NodesHandler{hub: hub}
}

// ListNodes handles GET /api/v1/nodes.
func (h *NodesHandler) ListNodes(c *gin.Context) {
	nodes := h.hub.Registry.List()
	views := make([]types.NodeView, 0, len(nodes))
	for _, n := range nodes {
		views = append(views, nodeToView(n))
	}
	c.JSON(http.StatusOK, types.ListNodesResponse{Nodes: views, Count: len(views)})
}

// GetNode handles GET /api/v1/nodes/:id.
func (h *NodesHandler) GetNode(c *gin.Context) {
	id := c.Param("id")
	n, ok := h.hub.Registry.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: "node not found",
		})
		return
	}
	c.JSON(http.StatusOK, types.NodeResponse{Node: nodeToView(n)})
}
