package recommend_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/KP-365/TheWearDeck/models"
	"github.com/KP-365/TheWearDeck/outfit"
	"github.com/gin-gonic/gin"
)

// RecommendRequest carries either a free-text query or an image URL; at
// least one is required. TopK bounds both the product search and the
// number of outfits returned.
type RecommendRequest struct {
	Query    *string `json:"query"`
	ImageURL *string `json:"image_url"`
	TopK     int     `json:"top_k"`
}

// Recommend godoc
// @Summary Recommend outfits for a query
// @Description Embeds the query, finds the nearest catalog products and assembles them into outfits
// @Tags Recommend
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /recommend [post]
func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	if req.Query == nil && req.ImageURL == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Either query or image_url must be provided"))
		return
	}
	if req.TopK <= 0 {
		req.TopK = 5
	}

	// An image URL is embedded via a text description of it rather than
	// by fetching the remote image.
	var embedding []float32
	queryType := "text"
	if req.ImageURL != nil {
		embedding = h.embed.GenerateFromText(fmt.Sprintf("outfit similar to image at %s", *req.ImageURL))
		queryType = "image"
	} else {
		embedding = h.embed.GenerateFromText(*req.Query)
	}

	results, err := h.search.SearchProducts(c.Request.Context(), embedding, req.TopK)
	if err != nil {
		log.Printf("[recommend] vector search failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Search failed"))
		return
	}

	products := make([]models.Product, 0, len(results))
	for _, r := range results {
		products = append(products, r.Product)
	}

	recommendations := outfit.GenerateOutfits(products, nil, req.TopK)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Recommendations generated", gin.H{
		"query_type":      queryType,
		"recommendations": recommendations,
		"count":           len(recommendations),
	}))
}
