package admin_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KP-365/TheWearDeck/models"
)

const listProductsLimit = 100

// ListProducts godoc
// @Summary List catalog products
// @Description Returns up to 100 products, embeddings excluded
// @Tags Admin
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/list-products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	var products []models.Product
	err := h.db.
		Select("id", "name", "price", "description", "category", "brand", "size", "color", "image_url", "affiliate_link", "created_at", "updated_at").
		Order("created_at DESC").
		Limit(listProductsLimit).
		Find(&products).Error
	if err != nil {
		log.Printf("[admin.list-products] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products", gin.H{
		"products": products,
		"count":    len(products),
	}))
}
