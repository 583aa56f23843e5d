package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plant represents a plant record owned by exactly one user.
//
// DeletedAt implements soft deletion: GORM's default scope excludes
// soft-deleted rows from every query, so no read, edit or delete path can
// observe a deleted plant without an explicit Unscoped call (which this
// codebase never makes).
type Plant struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	ImageSrc    string         `json:"image_src"`
	Color       string         `gorm:"size:64" json:"color"`
	Waterings   []Watering     `gorm:"foreignKey:PlantID" json:"waterings,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns the opaque plant identifier once, at creation.
func (p *Plant) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Watering records a single watering event for a plant. Only the most
// recent one is surfaced in plant list responses.
type Watering struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PlantID   string    `gorm:"size:36;not null;index" json:"plant_id"`
	CreatedAt time.Time `json:"created_at"`
}
