package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all user-related routes (including Auth).
func RegisterRoutes(g *gin.RouterGroup, h *UserHandler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/users")

	// Public Routes
	group.POST("/register", h.Register)
	group.POST("/login", h.Login)

	// Authenticated Routes
	group.GET("/profile", authMiddleware, h.Profile)
	group.PUT("/profile", authMiddleware, h.UpdateProfile)

	// Admin Routes
	group.GET("", authMiddleware, adminMiddleware, h.List)
}
