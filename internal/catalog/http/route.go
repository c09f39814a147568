package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/services")

	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

// RegisterPublicRoutes mounts the unauthenticated catalog listing under the
// tenant-slug group.
func RegisterPublicRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/services", h.PublicList)
}
