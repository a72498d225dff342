package main

// @title WearDeck API
// @version 1.0
// @description Outfit recommendation backend: vector product search, budget-aware outfit generation and a personalized feed.
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/KP-365/TheWearDeck/config"
	"github.com/KP-365/TheWearDeck/controllers/action_controller"
	"github.com/KP-365/TheWearDeck/controllers/admin_controller"
	"github.com/KP-365/TheWearDeck/controllers/auth_controller"
	"github.com/KP-365/TheWearDeck/controllers/onboarding_controller"
	"github.com/KP-365/TheWearDeck/controllers/recommend_controller"
	"github.com/KP-365/TheWearDeck/middleware"
	"github.com/KP-365/TheWearDeck/routes"
	"github.com/KP-365/TheWearDeck/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	ctx := context.Background()

	// Connect to DB
	dbs, err := config.InitDB(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer dbs.Close()

	// Redis connection (rate limiting only; the API works without it)
	rdb, err := config.ConnectRedis(ctx)
	if err != nil {
		log.Printf("⚠️ Redis unavailable, rate limiting disabled: %v", err)
		rdb = nil
	}

	// Initialize Cloudinary service
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	cld, err := services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// ✅ Initialize Google OAuth (optional; email/password auth works without it)
	oauth, err := config.InitGoogleOAuth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Google OAuth: %v", err)
	}

	embed := services.NewEmbeddingService()
	search := services.NewVectorSearchService(dbs.Pool)
	resend := services.NewResendClient()

	authHandler := auth_controller.NewHandler(dbs.Gorm, resend, oauth)
	onboardingHandler := onboarding_controller.NewHandler(dbs.Gorm, cld, embed)
	recommendHandler := recommend_controller.NewHandler(dbs.Gorm, embed, search)
	actionHandler := action_controller.NewHandler(dbs.Gorm)
	adminHandler := admin_controller.NewHandler(dbs.Gorm, cld, embed)

	// ✅ Configure CORS properly for all content types including PDFs
	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetFrontendURL(), "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "weardeck-api"})
	})

	// Register API routes
	api := router.Group("/api/v1")
	if rdb != nil {
		api.Use(middleware.RateLimiter(rdb, 100, time.Minute))
	}

	routes.SetupAuthRoutes(api, authHandler)
	routes.SetupOnboardingRoutes(api, onboardingHandler)
	routes.SetupRecommendRoutes(api, recommendHandler)
	routes.SetupActionRoutes(api, actionHandler)
	routes.SetupAdminRoutes(api, adminHandler)
	log.Println("✅ Routes registered")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
