package admin_controller

import (
	"crypto/subtle"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/KP-365/TheWearDeck/models"
	"github.com/KP-365/TheWearDeck/utils"
)

const adminSessionMaxAge = 86400

// AdminLogin godoc
// @Summary Admin login
// @Description Checks the submitted credentials against ADMIN_USERNAME / ADMIN_PASSWORD and sets the session cookie
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Admin username"
// @Param password formData string true "Admin password"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/login [post]
func (h *Handler) AdminLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "username and password are required"))
		return
	}

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminUsername == "" || adminPassword == "" {
		log.Printf("[admin.login] ADMIN_USERNAME / ADMIN_PASSWORD not configured")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Admin credentials not configured"))
		return
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(adminUsername)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(adminPassword)) == 1
	if !usernameMatch || !passwordMatch {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid credentials"))
		return
	}

	token, err := utils.GenerateAdminSessionToken(username)
	if err != nil {
		log.Printf("[admin.login] failed to issue session token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}

	secure := os.Getenv("APP_ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("session_token", token, adminSessionMaxAge, "/", "", secure, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", nil))
}

// AdminLogout godoc
// @Summary Admin logout
// @Tags Admin
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func (h *Handler) AdminLogout(c *gin.Context) {
	secure := os.Getenv("APP_ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("session_token", "", -1, "/", "", secure, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
