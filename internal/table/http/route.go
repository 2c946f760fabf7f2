package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers table-related routes.
// Reads are public; mutations are admin only.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/tables")

	group.GET("", h.List)
	group.GET("/:id", h.Get)

	group.POST("", authMiddleware, adminMiddleware, h.Create)
	group.PUT("/:id", authMiddleware, adminMiddleware, h.Update)
	group.DELETE("/:id", authMiddleware, adminMiddleware, h.Delete)
	group.POST("/:id/photo", authMiddleware, adminMiddleware, h.UploadPhoto)
}
