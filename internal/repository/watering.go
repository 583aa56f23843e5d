package repository

import (
	"context"

	"verdant/internal/models"

	"gorm.io/gorm"
)

// WateringRepository defines the interface for watering event records.
type WateringRepository interface {
	Create(ctx context.Context, watering *models.Watering) error
	LatestForPlant(ctx context.Context, plantID string) (*models.Watering, error)
}

type wateringRepository struct {
	db *gorm.DB
}

// NewWateringRepository creates a new watering repository
func NewWateringRepository(db *gorm.DB) WateringRepository {
	return &wateringRepository{db: db}
}

func (r *wateringRepository) Create(ctx context.Context, watering *models.Watering) error {
	return r.db.WithContext(ctx).Create(watering).Error
}

func (r *wateringRepository) LatestForPlant(ctx context.Context, plantID string) (*models.Watering, error) {
	var watering models.Watering
	err := r.db.WithContext(ctx).
		Where("plant_id = ?", plantID).
		Order("created_at DESC").
		First(&watering).Error
	if err != nil {
		return nil, err
	}
	return &watering, nil
}
