package onboarding_controller

import (
	"log"
	"net/http"

	"github.com/KP-365/TheWearDeck/middleware"
	"github.com/KP-365/TheWearDeck/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CompleteOnboarding godoc
// @Summary Save onboarding preferences
// @Description Stores gender, style tags and budget range, then marks onboarding as done
// @Tags Onboarding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /onboarding/complete [post]
func (h *Handler) CompleteOnboarding(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	var req models.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
			return
		}
		log.Printf("[onboarding.complete] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	updates := map[string]interface{}{
		"onboarding_completed": true,
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.PreferredStyles != nil {
		updates["preferred_styles"] = models.TagsList(req.PreferredStyles)
	}
	if req.BudgetRange != nil {
		updates["budget_range"] = *req.BudgetRange
	}

	if err := h.db.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("[onboarding.complete] failed to update: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save preferences"))
		return
	}

	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		log.Printf("[onboarding.complete] reload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Onboarding completed", gin.H{"user": user.ToResponse()}))
}
