package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KP-365/TheWearDeck/middleware"
	"github.com/KP-365/TheWearDeck/models"
)

// VerifySession godoc
// @Summary Verify the admin session
// @Tags Admin
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /admin/verify [get]
func (h *Handler) VerifySession(c *gin.Context) {
	username, ok := middleware.GetAdminUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session valid", gin.H{
		"authenticated": true,
		"username":      username,
	}))
}
