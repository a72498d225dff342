// Package recommend_controller serves the two recommendation surfaces:
// explicit query recommendations (POST /recommend) and the personalized
// outfit feed (GET /feed).
package recommend_controller

import (
	"github.com/KP-365/TheWearDeck/services"
	"gorm.io/gorm"
)

type Handler struct {
	db     *gorm.DB
	embed  *services.EmbeddingService
	search *services.VectorSearchService
}

func NewHandler(db *gorm.DB, embed *services.EmbeddingService, search *services.VectorSearchService) *Handler {
	return &Handler{db: db, embed: embed, search: search}
}
