package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

// Product is a catalog item. Outfit generation only ever reads Price and
// Category; everything else is passed through to the client untouched.
type Product struct {
	ID                 uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	Name               string           `json:"name" gorm:"not null;index"`
	Price              Price            `json:"price" gorm:"type:numeric(12,2);not null"`
	Description        *string          `json:"description,omitempty" gorm:"type:text"`
	Category           string           `json:"category" gorm:"type:varchar(100);index"`
	Brand              *string          `json:"brand,omitempty" gorm:"type:varchar(255)"`
	Size               *string          `json:"size,omitempty" gorm:"type:varchar(50)"`
	Color              *string          `json:"color,omitempty" gorm:"type:varchar(50)"`
	ImageURL           string           `json:"image_url" gorm:"type:text"`
	CloudinaryPublicID string           `json:"-" gorm:"column:cloudinary_public_id;type:varchar(255)"`
	AffiliateLink      *string          `json:"affiliate_link,omitempty" gorm:"type:text"`
	Embedding          *pgvector.Vector `json:"-" gorm:"type:vector(512)"`
	CreatedAt          time.Time        `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt          time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// ScoredProduct is a vector search hit: the product plus its L2 distance
// from the query embedding and the derived similarity score.
type ScoredProduct struct {
	Product         Product `json:"product"`
	Distance        float64 `json:"distance"`
	SimilarityScore float64 `json:"similarity_score"`
}
