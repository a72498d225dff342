package action_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KP-365/TheWearDeck/middleware"
	"github.com/KP-365/TheWearDeck/models"
)

// CreateAction godoc
// @Summary Record a like, skip or shop action
// @Description Logs the action per product. Multi-product likes share an outfit_id so they regroup on /saved
// @Tags Actions
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param action_type formData string true "One of like, skip, shop"
// @Param product_id formData string false "Single product ID"
// @Param product_ids formData string false "Comma-joined product IDs for a whole outfit"
// @Param outfit_id formData string false "Outfit grouping ID; generated when absent"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /action [post]
func (h *Handler) CreateAction(c *gin.Context) {
	userIDStr, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user"))
		return
	}

	var req models.ActionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "action_type must be one of: like, skip, shop"))
		return
	}

	productIDs, err := parseProductIDs(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	outfitID := uuid.New()
	if req.OutfitID != "" {
		parsed, err := uuid.Parse(req.OutfitID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid outfit_id"))
			return
		}
		outfitID = parsed
	}

	// Only multi-item likes are tagged with the outfit id; single-product
	// actions stay ungrouped so /saved falls back to the product id.
	isOutfit := len(productIDs) > 1
	actions := make([]models.UserAction, 0, len(productIDs))
	for _, pid := range productIDs {
		action := models.UserAction{
			UserID:     userID,
			ProductID:  pid,
			ActionType: req.ActionType,
		}
		if req.ActionType == models.ActionLike && isOutfit {
			oid := outfitID
			action.OutfitID = &oid
		}
		actions = append(actions, action)
	}

	if err := h.db.Create(&actions).Error; err != nil {
		log.Printf("[action.create] failed to record %s for user %s: %v", req.ActionType, userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to record action"))
		return
	}

	subject := "Item"
	var responseOutfitID *uuid.UUID
	if isOutfit {
		subject = "Outfit"
		responseOutfitID = &outfitID
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, subject+" "+req.ActionType+"d successfully", gin.H{
		"outfit_id": responseOutfitID,
		"actions":   actions,
	}))
}

// parseProductIDs accepts either product_ids (comma-joined) or the legacy
// single product_id field.
func parseProductIDs(req models.ActionRequest) ([]uuid.UUID, error) {
	var raw []string
	switch {
	case req.ProductIDs != "":
		raw = strings.Split(req.ProductIDs, ",")
	case req.ProductID != "":
		raw = []string{req.ProductID}
	default:
		return nil, errEmptyProducts
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, errInvalidProductID
		}
		ids = append(ids, id)
	}
	return ids, nil
}
