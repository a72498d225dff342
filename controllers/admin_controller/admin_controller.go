// Package admin_controller is the catalog management surface: env-credential
// login issuing a role-scoped session cookie, plus product CRUD behind it.
package admin_controller

import (
	"github.com/KP-365/TheWearDeck/services"
	"gorm.io/gorm"
)

type Handler struct {
	db    *gorm.DB
	cld   *services.CloudinaryService
	embed *services.EmbeddingService
}

func NewHandler(db *gorm.DB, cld *services.CloudinaryService, embed *services.EmbeddingService) *Handler {
	return &Handler{db: db, cld: cld, embed: embed}
}
