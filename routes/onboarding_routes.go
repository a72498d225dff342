package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KP-365/TheWearDeck/controllers/onboarding_controller"
	"github.com/KP-365/TheWearDeck/middleware"
)

// SetupOnboardingRoutes sets up the post-signup onboarding routes
func SetupOnboardingRoutes(router *gin.RouterGroup, h *onboarding_controller.Handler) {
	onboarding := router.Group("/onboarding")
	onboarding.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		onboarding.POST("/inspo-image", h.UploadInspoImage)
		onboarding.POST("/budget", h.SaveBudget)
		onboarding.POST("/complete", h.CompleteOnboarding)
	}
}
