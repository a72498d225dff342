package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// InspoImage is an onboarding style-inspiration upload. Its embedding is
// what the feed averages into the user's style vector.
type InspoImage struct {
	ID                 uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	ImageURL           string          `json:"image_url" gorm:"type:text;not null"`
	CloudinaryPublicID string          `json:"-" gorm:"column:cloudinary_public_id;type:varchar(255)"`
	Embedding          pgvector.Vector `json:"-" gorm:"type:vector(512)"`
	CreatedAt          time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (InspoImage) TableName() string {
	return "inspo_images"
}

func (i *InspoImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}
