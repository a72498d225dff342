package onboarding_controller

import (
	"github.com/KP-365/TheWearDeck/services"
	"gorm.io/gorm"
)

// Handler owns the dependencies of the onboarding endpoints.
type Handler struct {
	db    *gorm.DB
	cld   *services.CloudinaryService
	embed *services.EmbeddingService
}

func NewHandler(db *gorm.DB, cld *services.CloudinaryService, embed *services.EmbeddingService) *Handler {
	return &Handler{db: db, cld: cld, embed: embed}
}
