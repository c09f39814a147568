package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/appointments")

	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PATCH("/:id", h.UpdateStatus)
		group.DELETE("/:id", h.Cancel)
	}

	metrics := g.Group("/dashboard")
	metrics.Use(authMiddleware)
	{
		metrics.GET("/metrics", h.Metrics)
	}
}

// RegisterPublicRoutes mounts the visitor-facing booking endpoints under the
// tenant-slug group.
func RegisterPublicRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/availability", h.PublicAvailability)
	g.POST("/appointments", h.PublicBook)
}
