// Package action_controller records user feedback on products and outfits
// (like / skip / shop) and serves the saved-outfit views built from it.
package action_controller

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	errEmptyProducts    = errors.New("Either product_id or product_ids required")
	errInvalidProductID = errors.New("Invalid product ID")
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}
