package auth_controller

import (
	"fmt"
	"net/http"
	"os"

	"github.com/KP-365/TheWearDeck/config"
	"github.com/KP-365/TheWearDeck/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler owns the long-lived dependencies the auth endpoints use. One
// instance is built in main and shared by every request.
type Handler struct {
	db     *gorm.DB
	resend *services.ResendClient
	oauth  *config.GoogleOAuth
}

func NewHandler(db *gorm.DB, resend *services.ResendClient, oauth *config.GoogleOAuth) *Handler {
	return &Handler{db: db, resend: resend, oauth: oauth}
}

// setAuthCookie installs the HTTP-only JWT cookie.
func setAuthCookie(c *gin.Context, token string) {
	isProd := os.Getenv("APP_ENV") == "production"
	c.SetCookie(
		"auth_token",
		token,
		24*60*60, // 24 hours
		"/",
		"",
		isProd,
		true, // httpOnly
	)
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
