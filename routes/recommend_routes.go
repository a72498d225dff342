package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KP-365/TheWearDeck/controllers/recommend_controller"
	"github.com/KP-365/TheWearDeck/middleware"
)

// SetupRecommendRoutes sets up the recommendation and feed routes
func SetupRecommendRoutes(router *gin.RouterGroup, h *recommend_controller.Handler) {
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/recommend", h.Recommend)
		protected.GET("/feed", h.GetFeed)
	}
}
