package recommend_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalog_cache "github.com/KP-365/TheWearDeck/cache"
	"github.com/KP-365/TheWearDeck/middleware"
	"github.com/KP-365/TheWearDeck/models"
	"github.com/KP-365/TheWearDeck/outfit"
	"github.com/KP-365/TheWearDeck/services"
)

const feedCandidatePool = 50

// GetFeed godoc
// @Summary Personalized outfit feed
// @Description Builds outfits from products near the user's style vector, filtered by their saved budget
// @Tags Recommend
// @Produce json
// @Security BearerAuth
// @Param num_outfits query int false "Maximum outfits to return" default(10)
// @Param use_advanced_filter query bool false "Apply per-category budget caps" default(false)
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /feed [get]
func (h *Handler) GetFeed(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	numOutfits, err := strconv.Atoi(c.DefaultQuery("num_outfits", "10"))
	if err != nil {
		numOutfits = 10
	}
	useAdvanced, _ := strconv.ParseBool(c.DefaultQuery("use_advanced_filter", "false"))

	var user models.User
	var haveUser bool
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("[feed] failed to load user %s: %v", userID, err)
		}
	} else {
		haveUser = true
	}

	var userBudget *outfit.BudgetRange
	if haveUser && user.MinPrice != nil && user.MaxPrice != nil {
		userBudget = &outfit.BudgetRange{Min: *user.MinPrice, Max: *user.MaxPrice}
	}

	products := h.feedCandidates(c, userID)

	var outfits []outfit.Outfit
	if useAdvanced {
		var categoryBudgets map[string]outfit.BudgetRange
		if haveUser && (user.TopsMaxPrice != nil || user.BottomsMaxPrice != nil) {
			categoryBudgets = map[string]outfit.BudgetRange{}
			if user.TopsMaxPrice != nil {
				categoryBudgets[outfit.BudgetKeyTops] = outfit.BudgetRange{Min: 0, Max: *user.TopsMaxPrice}
			}
			if user.BottomsMaxPrice != nil {
				categoryBudgets[outfit.BudgetKeyBottoms] = outfit.BudgetRange{Min: 0, Max: *user.BottomsMaxPrice}
			}
			if user.ShoesMaxPrice != nil {
				categoryBudgets[outfit.BudgetKeyShoes] = outfit.BudgetRange{Min: 0, Max: *user.ShoesMaxPrice}
			}
			if user.AccessoriesMaxPrice != nil {
				categoryBudgets[outfit.BudgetKeyAccessories] = outfit.BudgetRange{Min: 0, Max: *user.AccessoriesMaxPrice}
			}
		}
		outfits = outfit.GenerateOutfitsWithAdvancedFilter(products, userBudget, categoryBudgets, numOutfits)
	} else {
		outfits = outfit.GenerateOutfits(products, userBudget, numOutfits)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Feed generated", gin.H{
		"outfits": outfits,
		"count":   len(outfits),
	}))
}

// feedCandidates picks the product pool to assemble outfits from. Users
// with inspiration images get the catalog's nearest neighbours to their
// mean style vector; everyone else gets a flat catalog slice. Any upstream
// failure degrades to an empty pool, never an error response.
func (h *Handler) feedCandidates(c *gin.Context, userID string) []models.Product {
	var inspoImages []models.InspoImage
	if err := h.db.Select("embedding").Where("user_id = ?", userID).Find(&inspoImages).Error; err != nil {
		log.Printf("[feed] failed to load inspo images for %s: %v", userID, err)
		inspoImages = nil
	}

	if len(inspoImages) > 0 {
		vectors := make([][]float32, 0, len(inspoImages))
		for _, img := range inspoImages {
			vectors = append(vectors, img.Embedding.Slice())
		}
		styleVector := services.MeanEmbedding(vectors)

		results, err := h.search.SearchProducts(c.Request.Context(), styleVector, feedCandidatePool)
		if err != nil {
			log.Printf("[feed] vector search failed for %s: %v", userID, err)
			return nil
		}
		products := make([]models.Product, 0, len(results))
		for _, r := range results {
			products = append(products, r.Product)
		}
		return products
	}

	if cached, ok := catalog_cache.GetCatalogSlice(); ok {
		return cached
	}

	var products []models.Product
	err := h.db.
		Select("id", "name", "price", "image_url", "category", "brand", "size", "color", "affiliate_link").
		Limit(feedCandidatePool).
		Find(&products).Error
	if err != nil {
		log.Printf("[feed] catalog query failed: %v", err)
		return nil
	}
	catalog_cache.SetCatalogSlice(products)
	return products
}
