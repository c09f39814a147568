package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	rules := g.Group("/availability")
	rules.Use(authMiddleware)
	{
		rules.GET("", h.ListRules)
		rules.POST("", h.CreateRule)
		rules.DELETE("/:id", h.DeleteRule)
	}

	timeOff := g.Group("/timeoff")
	timeOff.Use(authMiddleware)
	{
		timeOff.GET("", h.ListTimeOff)
		timeOff.POST("", h.CreateTimeOff)
		timeOff.DELETE("/:id", h.DeleteTimeOff)
	}
}
