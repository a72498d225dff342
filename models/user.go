package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email         string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	PasswordHash  *string   `json:"-" gorm:"column:password_hash;type:varchar(255)"`
	GoogleID      string    `json:"googleId,omitempty" gorm:"column:google_id;type:varchar(255);index"`
	Provider      string    `json:"provider" gorm:"type:varchar(50);default:'password'"`
	EmailVerified bool      `json:"emailVerified" gorm:"column:email_verified;default:false"`
	Avatar        *string   `json:"avatar,omitempty" gorm:"type:text"`

	// Onboarding
	Gender              *string  `json:"gender,omitempty" gorm:"type:varchar(50)"`
	PreferredStyles     TagsList `json:"preferred_styles" gorm:"type:jsonb;not null;default:'[]'"`
	BudgetRangeLabel    *string  `json:"budget_range,omitempty" gorm:"column:budget_range;type:varchar(50)"`
	OnboardingCompleted bool     `json:"onboarding_completed" gorm:"default:false"`

	// Outfit budget: global min/max plus optional per-category caps
	MinPrice            *float64 `json:"min_price,omitempty" gorm:"type:numeric(12,2)"`
	MaxPrice            *float64 `json:"max_price,omitempty" gorm:"type:numeric(12,2)"`
	TopsMaxPrice        *float64 `json:"tops_max_price,omitempty" gorm:"type:numeric(12,2)"`
	BottomsMaxPrice     *float64 `json:"bottoms_max_price,omitempty" gorm:"type:numeric(12,2)"`
	ShoesMaxPrice       *float64 `json:"shoes_max_price,omitempty" gorm:"type:numeric(12,2)"`
	AccessoriesMaxPrice *float64 `json:"accessories_max_price,omitempty" gorm:"type:numeric(12,2)"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// UserResponse is the public-facing user data
type UserResponse struct {
	ID                  uuid.UUID `json:"id"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	Provider            string    `json:"provider"`
	EmailVerified       bool      `json:"email_verified"`
	Avatar              *string   `json:"avatar,omitempty"`
	Gender              *string   `json:"gender,omitempty"`
	PreferredStyles     []string  `json:"preferred_styles,omitempty"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	MinPrice            *float64  `json:"min_price,omitempty"`
	MaxPrice            *float64  `json:"max_price,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:                  u.ID,
		Email:               u.Email,
		Name:                u.Name,
		Provider:            u.Provider,
		EmailVerified:       u.EmailVerified,
		Avatar:              u.Avatar,
		Gender:              u.Gender,
		PreferredStyles:     u.PreferredStyles,
		OnboardingCompleted: u.OnboardingCompleted,
		MinPrice:            u.MinPrice,
		MaxPrice:            u.MaxPrice,
		CreatedAt:           u.CreatedAt,
	}
}

// GoogleUserInfo represents data from Google OAuth
type GoogleUserInfo struct {
	Sub           string `json:"sub"` // Google user ID
	ID            string `json:"id"`  // legacy field on /oauth2/v2/userinfo
	Email         string `json:"email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	EmailVerified bool   `json:"email_verified"`
	VerifiedEmail bool   `json:"verified_email"`
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type AuthCredentials struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     *string `json:"name"`
}

type UserBudgetRequest struct {
	MinPrice float64 `json:"min_price" binding:"min=0"`
	MaxPrice float64 `json:"max_price" binding:"required,min=0"`
}

type OnboardingRequest struct {
	Gender              *string  `json:"gender"`
	PreferredStyles     []string `json:"preferred_styles"`
	BudgetRange         *string  `json:"budget_range"`
	OnboardingCompleted bool     `json:"onboarding_completed"`
}
