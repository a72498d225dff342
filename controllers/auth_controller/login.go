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

// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 500 {object} models.ApiResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var credentials models.AuthCredentials
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(credentials.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid credentials"))
			return
		}
		log.Printf("[auth.login] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Google-only accounts have no password hash
	if user.PasswordHash == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "This account uses Google sign-in"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(credentials.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid credentials"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.login] JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate token"))
		return
	}
	setAuthCookie(c, token)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", gin.H{
		"user":         user.ToResponse(),
		"access_token": token,
	}))
}
