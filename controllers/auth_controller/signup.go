package auth_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/KP-365/TheWearDeck/models"
	"github.com/KP-365/TheWearDeck/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Signup godoc
// @Summary Create an account
// @Description Registers a user with email and password, issues a JWT cookie and returns the token
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Validation error or email already registered"
// @Failure 500 {object} models.ApiResponse
// @Router /auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var credentials models.AuthCredentials
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please provide a valid email and a password of at least 8 characters"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(credentials.Email))

	var existing models.User
	if err := h.db.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "An account with this email already exists"))
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Printf("[auth.signup] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[auth.signup] failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	name := nameFromEmail(email)
	if credentials.Name != nil && *credentials.Name != "" {
		name = *credentials.Name
	}

	hashStr := string(hash)
	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: &hashStr,
		Provider:     "password",
	}
	if err := h.db.Create(&user).Error; err != nil {
		log.Printf("[auth.signup] failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Signup failed"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.signup] JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate token"))
		return
	}
	setAuthCookie(c, token)

	// Welcome email is best-effort; never block or fail the signup
	if h.resend != nil {
		go func(name, email string) {
			if err := h.resend.SendWelcomeEmail(name, email); err != nil {
				log.Printf("[auth.signup] welcome email failed: %v", err)
			}
		}(user.Name, user.Email)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Account created", gin.H{
		"user":         user.ToResponse(),
		"access_token": token,
	}))
}

// nameFromEmail is the default display name: the local part of the email,
// or the whole string when no @ is present.
func nameFromEmail(email string) string {
	return strings.SplitN(email, "@", 2)[0]
}
