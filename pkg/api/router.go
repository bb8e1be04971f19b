package api

import (
	"github.com/alertme/hub/pkg/alertme"
	"github.com/alertme/hub/pkg/api/handlers"
	"github.com/gin-gonic/gin"
)

// Router holds the Gin engine and the hub it reports on. There is no
// persistence or CLI layer here (§1 Out of scope) — this is a read-mostly
// operations surface over the in-memory hub.
type Router struct {
	engine *gin.Engine
	hub    *alertme.Hub
}

// NewRouter creates a new API router over hub.
func NewRouter(hub *alertme.Hub) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{engine: engine, hub: hub}
	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes.
func (r *Router) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(r.hub)
	r.engine.GET("/health", healthHandler.Health)

	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		nodesHandler := handlers.NewNodesHandler(r.hub)
		nodes := v1.Group("/nodes")
		{
			nodes.GET("", nodesHandler.ListNodes)
			nodes.GET("/:id", nodesHandler.GetNode)
		}

		discoveryHandler := handlers.NewDiscoveryHandler(r.hub)
		discovery := v1.Group("/discovery")
		{
			discovery.POST("/start", discoveryHandler.StartDiscovery)
			discovery.GET("/status", discoveryHandler.Status)
		}
	}
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
