package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Action types a user can take on a product or an assembled outfit.
const (
	ActionLike = "like"
	ActionSkip = "skip"
	ActionShop = "shop"
)

// UserAction records a like/skip/shop against a single product. Liking an
// assembled outfit writes one row per constituent product, all sharing the
// same OutfitID so /saved can regroup them.
type UserAction struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index:idx_user_actions_user"`
	ProductID  uuid.UUID  `json:"product_id" gorm:"type:uuid;not null;index"`
	ActionType string     `json:"action_type" gorm:"type:varchar(20);not null;check:action_type IN ('like', 'skip', 'shop')"`
	OutfitID   *uuid.UUID `json:"outfit_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

func (UserAction) TableName() string {
	return "user_actions"
}

func (a *UserAction) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// SavedOutfit is the /saved response shape: liked products regrouped by
// the outfit they were liked as part of.
type SavedOutfit struct {
	OutfitID   string    `json:"outfit_id"`
	Items      []Product `json:"items"`
	TotalPrice float64   `json:"total_price"`
	ItemCount  int       `json:"item_count"`
}

// ActionRequest is the POST /action form payload. ProductIDs is a
// comma-joined list when the action targets a whole outfit.
type ActionRequest struct {
	ActionType string `form:"action_type" binding:"required,oneof=like skip shop"`
	ProductID  string `form:"product_id"`
	ProductIDs string `form:"product_ids"`
	OutfitID   string `form:"outfit_id"`
}
