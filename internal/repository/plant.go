// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"verdant/internal/models"

	"gorm.io/gorm"
)

// PlantRepository defines the interface for plant data operations.
//
// Every lookup is scoped by owner, and GORM's soft-delete scope keeps
// deleted rows out of all of them. FindOwned is a single scoped query:
// "not yours" and "does not exist" are indistinguishable to callers.
type PlantRepository interface {
	ListByOwner(ctx context.Context, ownerID uint) ([]*models.Plant, error)
	FindOwned(ctx context.Context, id string, ownerID uint) (*models.Plant, error)
	Create(ctx context.Context, plant *models.Plant) error
	Update(ctx context.Context, plant *models.Plant) error
	SoftDelete(ctx context.Context, plant *models.Plant) error
}

// plantRepository implements PlantRepository
type plantRepository struct {
	db *gorm.DB
}

// NewPlantRepository creates a new plant repository
func NewPlantRepository(db *gorm.DB) PlantRepository {
	return &plantRepository{db: db}
}

// ListByOwner returns all non-deleted plants for the owner. Waterings are
// preloaded most-recent-first; the response mapping truncates to one.
func (r *plantRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Plant, error) {
	var plants []*models.Plant
	err := r.db.WithContext(ctx).
		Preload("Waterings", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("user_id = ?", ownerID).
		Find(&plants).Error
	if err != nil {
		return nil, err
	}
	return plants, nil
}

func (r *plantRepository) FindOwned(ctx context.Context, id string, ownerID uint) (*models.Plant, error) {
	var plant models.Plant
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&plant).Error
	if err != nil {
		return nil, err
	}
	return &plant, nil
}

func (r *plantRepository) Create(ctx context.Context, plant *models.Plant) error {
	return r.db.WithContext(ctx).Create(plant).Error
}

func (r *plantRepository) Update(ctx context.Context, plant *models.Plant) error {
	return r.db.WithContext(ctx).Save(plant).Error
}

// SoftDelete stamps DeletedAt on the row; no physical removal.
func (r *plantRepository) SoftDelete(ctx context.Context, plant *models.Plant) error {
	return r.db.WithContext(ctx).Delete(plant).Error
}
