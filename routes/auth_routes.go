package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KP-365/TheWearDeck/controllers/auth_controller"
	"github.com/KP-365/TheWearDeck/middleware"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup, h *auth_controller.Handler) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)

		// Google OAuth routes
		auth.GET("/google", h.GoogleLogin)
		auth.GET("/google/callback", h.GoogleCallback)

		auth.GET("/me", middleware.AuthMiddleware(), h.GetMe)
	}
}
