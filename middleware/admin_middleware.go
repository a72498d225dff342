package middleware

import (
	"net/http"

	"github.com/KP-365/TheWearDeck/models"
	"github.com/KP-365/TheWearDeck/utils"
	"github.com/gin-gonic/gin"
)

// AdminMiddleware guards catalog-management routes with the role-scoped
// session cookie issued by the admin login.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionToken, err := c.Cookie("session_token")
		if err != nil || sessionToken == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateAdminSessionToken(sessionToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired session"))
			c.Abort()
			return
		}

		c.Set("adminUsername", claims.Username)
		c.Next()
	}
}

func GetAdminUsernameFromContext(c *gin.Context) (string, bool) {
	username, exists := c.Get("adminUsername")
	if !exists {
		return "", false
	}
	return username.(string), true
}
