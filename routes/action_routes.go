package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KP-365/TheWearDeck/controllers/action_controller"
	"github.com/KP-365/TheWearDeck/middleware"
)

// SetupActionRoutes sets up the feedback and saved-outfit routes
func SetupActionRoutes(router *gin.RouterGroup, h *action_controller.Handler) {
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/action", h.CreateAction)
		protected.GET("/saved", h.GetSavedOutfits)
		protected.GET("/saved/lookbook", h.GetLookbookPDF)
	}
}
