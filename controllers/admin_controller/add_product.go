package admin_controller

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pgvector/pgvector-go"

	catalog_cache "github.com/KP-365/TheWearDeck/cache"
	"github.com/KP-365/TheWearDeck/models"
)

const (
	maxProductImageBytes = 10 << 20
	productImageFolder   = "fashion_app/products"
)

// AddProduct godoc
// @Summary Add a catalog product
// @Description Uploads the product image, embeds it and inserts the product row
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Product image"
// @Param name formData string true "Product name"
// @Param price formData number true "Price"
// @Param description formData string false "Description"
// @Param category formData string false "Category label"
// @Param brand formData string false "Brand"
// @Param size formData string false "Size"
// @Param color formData string false "Color"
// @Param affiliate_link formData string false "Affiliate link"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/add-product [post]
func (h *Handler) AddProduct(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "name is required"))
		return
	}
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "price must be a non-negative number"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "image file is required"))
		return
	}
	if fileHeader.Size > maxProductImageBytes {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image must be under 10MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[admin.add-product] failed to open upload: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read image"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[admin.add-product] failed to read upload: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read image"))
		return
	}

	upload, err := h.cld.UploadImage(c.Request.Context(), data, productImageFolder)
	if err != nil {
		log.Printf("[admin.add-product] cloudinary upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image upload failed"))
		return
	}

	embedding := pgvector.NewVector(h.embed.GenerateFromImage(data))

	product := models.Product{
		Name:               name,
		Price:              models.Price(price),
		Description:        optionalForm(c, "description"),
		Category:           c.PostForm("category"),
		Brand:              optionalForm(c, "brand"),
		Size:               optionalForm(c, "size"),
		Color:              optionalForm(c, "color"),
		AffiliateLink:      optionalForm(c, "affiliate_link"),
		ImageURL:           upload.SecureURL,
		CloudinaryPublicID: upload.PublicID,
		Embedding:          &embedding,
	}

	if err := h.db.Create(&product).Error; err != nil {
		log.Printf("[admin.add-product] insert failed: %v", err)
		// Best-effort cleanup so the orphaned asset doesn't linger
		if delErr := h.cld.DeleteImage(c.Request.Context(), upload.PublicID); delErr != nil {
			log.Printf("[admin.add-product] failed to clean up image %s: %v", upload.PublicID, delErr)
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add product"))
		return
	}

	catalog_cache.Invalidate()
	log.Printf("[admin.add-product] added product %s (%s)", product.ID, product.Name)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product added successfully", gin.H{
		"product":   product,
		"image_url": upload.SecureURL,
	}))
}

// optionalForm returns nil for absent or empty form fields.
func optionalForm(c *gin.Context, key string) *string {
	v := c.PostForm(key)
	if v == "" {
		return nil
	}
	return &v
}
