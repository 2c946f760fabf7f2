package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.GET("/my-bookings", h.MyBookings)
		group.GET("/:id", h.Get)
		group.DELETE("/:id/cancel", h.Cancel)

		group.PUT("/:id/status", adminMiddleware, h.UpdateStatus)
		group.GET("", adminMiddleware, h.List)
	}
}
