package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smith-legal/staff-portal/internal/services"
	"github.com/smith-legal/staff-portal/internal/token"
	"github.com/smith-legal/staff-portal/internal/utils"
)

// HandlerManager owns every handler and the session middleware.
type HandlerManager struct {
	authHandler *AuthHandler
	userHandler *UserHandler
	pageHandler *PageHandler
	sessionAuth *SessionAuthMiddleware
}

// NewHandlerManager wires the handlers against the service manager.
func NewHandlerManager(
	serviceManager services.ServiceManager,
	codec *token.Codec,
	sessionMaxAge time.Duration,
	staticDir string,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler: NewAuthHandler(serviceManager.Auth(), codec, sessionMaxAge, logger),
		userHandler: NewUserHandler(serviceManager.User(), serviceManager.Export(), logger),
		pageHandler: NewPageHandler(staticDir, logger),
		sessionAuth: NewSessionAuthMiddleware(codec),
	}
}

// SetupRoutes sets up all API and page routes.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Authentication
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", hm.authHandler.Login)
		auth.POST("/logout", hm.authHandler.Logout)
	}

	// Staff directory; every route requires a valid session.
	users := router.Group("/api/users")
	users.Use(hm.sessionAuth.RequireAuth())
	{
		users.GET("", hm.userHandler.ListUsers)
		users.POST("", hm.userHandler.CreateUser)
		users.GET("/export", hm.userHandler.ExportUsers)
		users.GET("/:id", hm.userHandler.GetUser)
		users.PUT("/:id", hm.userHandler.UpdateUser)
		users.DELETE("/:id", hm.userHandler.DeleteUser)
	}

	// Browser pages
	router.GET("/", hm.sessionAuth.OptionalAuth(), hm.pageHandler.LoginPage)
	router.GET("/home", hm.sessionAuth.RequireAuth(), hm.pageHandler.HomePage)
	router.Static("/static", hm.pageHandler.staticDir)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":   "healthy",
			"software": "running",
		})
	})
}
