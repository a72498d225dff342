package auth_controller

import (
	"net/http"
	"os"

	"github.com/KP-365/TheWearDeck/models"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Log out
// @Description Clears the auth cookie. Bearer tokens simply expire.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	isProd := os.Getenv("APP_ENV") == "production"
	c.SetCookie("auth_token", "", -1, "/", "", isProd, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
