package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/JadissEL/table-booking-backend/internal/auth"
	"github.com/JadissEL/table-booking-backend/internal/booking"
	bookingHttp "github.com/JadissEL/table-booking-backend/internal/booking/http"
	"github.com/JadissEL/table-booking-backend/internal/file"
	fileHttp "github.com/JadissEL/table-booking-backend/internal/file/http"
	"github.com/JadissEL/table-booking-backend/internal/table"
	tableHttp "github.com/JadissEL/table-booking-backend/internal/table/http"
	"github.com/JadissEL/table-booking-backend/internal/user"
	userHttp "github.com/JadissEL/table-booking-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	UserService    user.Service
	TableService   table.Service
	BookingService booking.Service
	FileService    file.Service
	JWTManager     *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Auth) and registers routes for all modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks if the authenticated user is an admin.
	adminMiddleware := RequireAdmin(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	tableHandler := tableHttp.NewHandler(cfg.TableService, cfg.FileService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		tableHttp.RegisterRoutes(v1, tableHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler)
	}

	return r
}
