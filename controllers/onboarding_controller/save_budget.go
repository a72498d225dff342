package onboarding_controller

import (
	"log"
	"net/http"

	"github.com/KP-365/TheWearDeck/middleware"
	"github.com/KP-365/TheWearDeck/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SaveBudget godoc
// @Summary Save the user's outfit budget
// @Description Stores the global min/max total-outfit price used by the feed
// @Tags Onboarding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /onboarding/budget [post]
func (h *Handler) SaveBudget(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	var budget models.UserBudgetRequest
	if err := c.ShouldBindJSON(&budget); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "min_price and max_price must be non-negative numbers"))
		return
	}
	if budget.MinPrice > budget.MaxPrice {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "min_price cannot exceed max_price"))
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
			return
		}
		log.Printf("[onboarding.budget] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	updates := map[string]interface{}{
		"min_price": budget.MinPrice,
		"max_price": budget.MaxPrice,
	}
	if err := h.db.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("[onboarding.budget] failed to update: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save budget"))
		return
	}

	user.MinPrice = &budget.MinPrice
	user.MaxPrice = &budget.MaxPrice

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Budget saved", gin.H{"user": user.ToResponse()}))
}
