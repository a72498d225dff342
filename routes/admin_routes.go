package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KP-365/TheWearDeck/controllers/admin_controller"
	"github.com/KP-365/TheWearDeck/middleware"
)

// SetupAdminRoutes sets up the catalog management routes
func SetupAdminRoutes(router *gin.RouterGroup, h *admin_controller.Handler) {
	admin := router.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	admin.POST("/login", h.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Admin Session Required)
	// ════════════════════════════════════════════════════════════
	protected := admin.Group("")
	protected.Use(middleware.AdminMiddleware())
	{
		protected.POST("/logout", h.AdminLogout)
		protected.GET("/verify", h.VerifySession)

		protected.POST("/add-product", h.AddProduct)
		protected.GET("/list-products", h.ListProducts)
		protected.DELETE("/delete-product/:id", h.DeleteProduct)
	}
}
