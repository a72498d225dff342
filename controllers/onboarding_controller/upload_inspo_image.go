package onboarding_controller

import (
	"io"
	"log"
	"net/http"

	"github.com/KP-365/TheWearDeck/middleware"
	"github.com/KP-365/TheWearDeck/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// Inspo uploads stay modest; the embedding only needs the decoded header
// anyway.
const maxInspoImageBytes = 10 << 20 // 10 MiB

// UploadInspoImage godoc
// @Summary Upload a style-inspiration image
// @Description Stores the image on Cloudinary, embeds it, and saves it as a style signal for the feed
// @Tags Onboarding
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Inspiration image"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /onboarding/inspo-image [post]
func (h *Handler) UploadInspoImage(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}
	if fileHeader.Size > maxInspoImageBytes {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image too large (max 10MB)"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read image"))
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read image"))
		return
	}

	upload, err := h.cld.UploadImage(c.Request.Context(), contents, "inspo_images")
	if err != nil {
		log.Printf("[onboarding.inspo] upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image upload failed"))
		return
	}

	embedding := h.embed.GenerateFromImage(contents)

	inspo := models.InspoImage{
		UserID:             uid,
		ImageURL:           upload.SecureURL,
		CloudinaryPublicID: upload.PublicID,
		Embedding:          pgvector.NewVector(embedding),
	}
	if err := h.db.Create(&inspo).Error; err != nil {
		log.Printf("[onboarding.inspo] failed to save: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save inspiration image"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inspiration image saved", gin.H{
		"inspo_image": inspo,
	}))
}
