package action_controller

import (
	"log"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/KP-365/TheWearDeck/middleware"
	"github.com/KP-365/TheWearDeck/models"
)

// GetSavedOutfits godoc
// @Summary List the user's saved outfits
// @Description Regroups liked products by the outfit they were liked as part of; solo likes become one-item outfits
// @Tags Actions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /saved [get]
func (h *Handler) GetSavedOutfits(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	saved, err := h.savedOutfits(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Saved outfits", gin.H{
		"saved_outfits": saved,
		"count":         len(saved),
	}))
}

// savedOutfits loads the user's likes and regroups them into outfits.
// Likes without an outfit id group under their own product id.
func (h *Handler) savedOutfits(c *gin.Context, userID string) ([]models.SavedOutfit, error) {
	var likes []models.UserAction
	if err := h.db.
		Where("user_id = ? AND action_type = ?", userID, models.ActionLike).
		Order("created_at DESC").
		Find(&likes).Error; err != nil {
		log.Printf("[action.saved] failed to load likes for %s: %v", userID, err)
		return nil, err
	}
	if len(likes) == 0 {
		return []models.SavedOutfit{}, nil
	}

	groups := map[string][]models.UserAction{}
	order := []string{}
	for _, like := range likes {
		key := like.ProductID.String()
		if like.OutfitID != nil {
			key = like.OutfitID.String()
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], like)
	}

	saved := make([]models.SavedOutfit, 0, len(groups))
	for _, outfitID := range order {
		actions := groups[outfitID]
		productIDs := make([]string, 0, len(actions))
		for _, a := range actions {
			productIDs = append(productIDs, a.ProductID.String())
		}

		var items []models.Product
		if err := h.db.Where("id IN ?", productIDs).Find(&items).Error; err != nil {
			log.Printf("[action.saved] failed to load products for outfit %s: %v", outfitID, err)
			return nil, err
		}
		sort.Slice(items, func(i, j int) bool { return items[i].Price < items[j].Price })

		total := 0.0
		for _, p := range items {
			total += p.Price.Float64()
		}

		saved = append(saved, models.SavedOutfit{
			OutfitID:   outfitID,
			Items:      items,
			TotalPrice: total,
			ItemCount:  len(items),
		})
	}
	return saved, nil
}
