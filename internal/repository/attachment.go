package repository

import (
	"context"

	"verdant/internal/models"

	"gorm.io/gorm"
)

// AttachmentRepository defines the interface for attachment bookkeeping.
// Attachments are append-only; there is no update operation.
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	ListByPlant(ctx context.Context, plantID string) ([]*models.Attachment, error)
}

type attachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new attachment repository
func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) Create(ctx context.Context, attachment *models.Attachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

func (r *attachmentRepository) ListByPlant(ctx context.Context, plantID string) ([]*models.Attachment, error) {
	var attachments []*models.Attachment
	err := r.db.WithContext(ctx).
		Where("plant_id = ?", plantID).
		Order("created_at DESC").
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}
