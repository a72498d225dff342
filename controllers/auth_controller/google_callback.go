package auth_controller

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/KP-365/TheWearDeck/config"
	"github.com/KP-365/TheWearDeck/models"
	"github.com/KP-365/TheWearDeck/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Verifies the state token, exchanges the authorization code, creates/updates the user, issues a JWT cookie and redirects back to the frontend.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Redirect to frontend after successful login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Router /auth/google/callback [get]
func (h *Handler) GoogleCallback(c *gin.Context) {
	if h.oauth == nil {
		redirectToFrontendWithError(c, "Google sign-in not configured")
		return
	}

	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("[auth.google] state mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	token, err := h.oauth.Config.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("[auth.google] exchange failed: %v", err)
		redirectToFrontendWithError(c, "Failed to exchange token")
		return
	}

	client := h.oauth.Config.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		log.Printf("[auth.google] failed to get user info: %v", err)
		redirectToFrontendWithError(c, "Failed to get user info")
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		redirectToFrontendWithError(c, "Failed to read user info")
		return
	}

	var googleUser models.GoogleUserInfo
	if err := json.Unmarshal(body, &googleUser); err != nil {
		log.Printf("[auth.google] decode failed: %v", err)
		redirectToFrontendWithError(c, "Failed to decode user info")
		return
	}

	googleID := googleUser.Sub
	if googleID == "" {
		googleID = googleUser.ID
	}
	if googleID == "" {
		redirectToFrontendWithError(c, "Google ID not found")
		return
	}

	emailVerified := googleUser.EmailVerified || googleUser.VerifiedEmail

	user, err := h.createOrUpdateGoogleUser(&googleUser, googleID, emailVerified)
	if err != nil {
		log.Printf("[auth.google] database error: %v", err)
		redirectToFrontendWithError(c, "Database error")
		return
	}

	jwtToken, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.google] JWT error: %v", err)
		redirectToFrontendWithError(c, "Failed to generate token")
		return
	}
	setAuthCookie(c, jwtToken)

	log.Printf("[auth.google] logged in %s", user.Email)
	c.Redirect(http.StatusTemporaryRedirect, config.GetFrontendURL()+"/auth/success")
}

func (h *Handler) createOrUpdateGoogleUser(googleUser *models.GoogleUserInfo, googleID string, emailVerified bool) (*models.User, error) {
	var user models.User

	result := h.db.Where("email = ?", googleUser.Email).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google login, create user
			user = models.User{
				Email:         googleUser.Email,
				Name:          googleUser.Name,
				GoogleID:      googleID,
				Provider:      "google",
				EmailVerified: emailVerified,
				Avatar:        &googleUser.Picture,
			}
			if err := h.db.Create(&user).Error; err != nil {
				return nil, err
			}
			return &user, nil
		}
		return nil, result.Error
	}

	// Existing user: update safe fields only
	updates := map[string]interface{}{
		"avatar":         googleUser.Picture,
		"email_verified": emailVerified,
	}
	if user.Name == "" {
		updates["name"] = googleUser.Name
	}
	// Attach Google account if not already linked
	if user.GoogleID == "" {
		updates["google_id"] = googleID
	}

	if err := h.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	if user.Name == "" {
		user.Name = googleUser.Name
	}
	user.Avatar = &googleUser.Picture
	user.EmailVerified = emailVerified

	return &user, nil
}
