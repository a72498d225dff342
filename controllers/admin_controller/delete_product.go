package admin_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalog_cache "github.com/KP-365/TheWearDeck/cache"
	"github.com/KP-365/TheWearDeck/models"
)

// DeleteProduct godoc
// @Summary Delete a catalog product
// @Description Removes the product row and best-effort deletes its hosted image
// @Tags Admin
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/delete-product/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var product models.Product
	if err := h.db.Select("id", "cloudinary_public_id").Where("id = ?", productID).First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[admin.delete-product] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Image deletion is best-effort; a dangling asset is preferable to a
	// product that cannot be removed.
	if product.CloudinaryPublicID != "" {
		if err := h.cld.DeleteImage(c.Request.Context(), product.CloudinaryPublicID); err != nil {
			log.Printf("[admin.delete-product] failed to delete image %s: %v", product.CloudinaryPublicID, err)
		}
	}

	if err := h.db.Delete(&models.Product{}, "id = ?", productID).Error; err != nil {
		log.Printf("[admin.delete-product] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	catalog_cache.Invalidate()
	log.Printf("[admin.delete-product] deleted product %s", productID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}
