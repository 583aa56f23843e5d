package service

import (
	"context"
	"errors"
	"strings"

	"verdant/internal/cache"
	"verdant/internal/models"
	"verdant/internal/observability"
	"verdant/internal/repository"
	"verdant/internal/validation"

	"gorm.io/gorm"
)

// AttachmentManager is the attachment collaborator consumed by the plant
// lifecycle service. Implemented by AttachmentService; stubbed in tests.
type AttachmentManager interface {
	UploadFile(ctx context.Context, userID uint, payload string) (string, error)
	RecordAttachment(ctx context.Context, plantID, url, purpose string) error
	ListForPlant(ctx context.Context, plantID string) ([]*models.Attachment, error)
}

// PlantService orchestrates the plant lifecycle: validated input, blob
// upload (when an image accompanies a request) and persistence, in the
// strict order upload -> persist -> record attachment. A failed upload
// therefore never yields a half-formed plant row, and attachment rows
// always reference an already-persisted plant identifier.
type PlantService struct {
	plantRepo    repository.PlantRepository
	wateringRepo repository.WateringRepository
	attachments  AttachmentManager
}

// CreatePlantInput carries the fields for creating a plant. ImageSrc, when
// set, is the raw base64 image payload, not a URL.
type CreatePlantInput struct {
	OwnerID     uint
	Name        string
	Description string
	ImageSrc    string
	Color       string
}

// EditPlantInput carries the fields for editing a plant.
type EditPlantInput struct {
	OwnerID     uint
	PlantID     string
	Name        string
	Description string
	ImageSrc    string
	Color       string
}

// NewPlantService creates a new plant lifecycle service.
func NewPlantService(
	plantRepo repository.PlantRepository,
	wateringRepo repository.WateringRepository,
	attachments AttachmentManager,
) *PlantService {
	return &PlantService{
		plantRepo:    plantRepo,
		wateringRepo: wateringRepo,
		attachments:  attachments,
	}
}

// ListPlants returns summaries of all non-deleted plants owned by the
// principal, each carrying its most recent watering (or none). The plant
// ordering itself is storage-defined. Results are served cache-aside; every
// mutation path invalidates the owner's key.
func (s *PlantService) ListPlants(ctx context.Context, ownerID uint) ([]*models.PlantSummary, error) {
	var summaries []*models.PlantSummary
	err := cache.Aside(ctx, cache.PlantListKey(ownerID), &summaries, cache.PlantListTTL, func() error {
		plants, fetchErr := s.plantRepo.ListByOwner(ctx, ownerID)
		if fetchErr != nil {
			return fetchErr
		}
		summaries = make([]*models.PlantSummary, 0, len(plants))
		for _, p := range plants {
			summaries = append(summaries, models.NewPlantSummary(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// CreatePlant validates input, uploads the image payload (if any) before
// touching storage, persists the plant and finally records the attachment.
// An upload failure aborts the whole operation with zero rows written. An
// attachment bookkeeping failure propagates but is not rolled back against
// the already-created plant.
func (s *PlantService) CreatePlant(ctx context.Context, in CreatePlantInput) (*models.PlantSummary, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if err := validatePlantFields(name, description, in.Color); err != nil {
		return nil, err
	}

	var imageURL string
	if in.ImageSrc != "" {
		url, err := s.attachments.UploadFile(ctx, in.OwnerID, in.ImageSrc)
		if err != nil {
			observability.PlantOperations.WithLabelValues("create", "upload_error").Inc()
			return nil, err
		}
		imageURL = url
	}

	plant := &models.Plant{
		UserID:      in.OwnerID,
		Name:        name,
		Description: description,
		ImageSrc:    imageURL,
		Color:       in.Color,
	}
	if err := s.plantRepo.Create(ctx, plant); err != nil {
		observability.PlantOperations.WithLabelValues("create", "error").Inc()
		return nil, err
	}
	cache.InvalidatePlantList(ctx, in.OwnerID)

	if imageURL != "" {
		if err := s.attachments.RecordAttachment(ctx, plant.ID, imageURL, models.AttachmentPurposePlantPicture); err != nil {
			return nil, err
		}
	}

	observability.PlantOperations.WithLabelValues("create", "success").Inc()
	return models.NewPlantSummary(plant), nil
}

// EditPlant looks up the target scoped to (id, owner) among non-deleted
// rows, uploads a new image first when one is supplied, applies the update
// and records a new attachment against the originally fetched plant.
// Omitting the image payload leaves the stored image untouched.
func (s *PlantService) EditPlant(ctx context.Context, in EditPlantInput) (*models.PlantSummary, error) {
	plant, err := s.findOwned(ctx, in.PlantID, in.OwnerID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if err := validatePlantFields(name, description, in.Color); err != nil {
		return nil, err
	}

	var imageURL string
	if in.ImageSrc != "" {
		url, uploadErr := s.attachments.UploadFile(ctx, in.OwnerID, in.ImageSrc)
		if uploadErr != nil {
			observability.PlantOperations.WithLabelValues("edit", "upload_error").Inc()
			return nil, uploadErr
		}
		imageURL = url
	}

	plant.Name = name
	plant.Description = description
	plant.Color = in.Color
	if imageURL != "" {
		plant.ImageSrc = imageURL
	}

	if err := s.plantRepo.Update(ctx, plant); err != nil {
		observability.PlantOperations.WithLabelValues("edit", "error").Inc()
		return nil, err
	}
	cache.InvalidatePlantList(ctx, in.OwnerID)

	if imageURL != "" {
		if err := s.attachments.RecordAttachment(ctx, plant.ID, imageURL, models.AttachmentPurposePlantPicture); err != nil {
			return nil, err
		}
	}

	// The scoped lookup does not preload waterings, so fetch the latest one
	// to keep the edit response shaped like a list entry.
	latest, err := s.wateringRepo.LatestForPlant(ctx, plant.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if latest != nil {
		plant.Waterings = []models.Watering{*latest}
	}

	observability.PlantOperations.WithLabelValues("edit", "success").Inc()
	return models.NewPlantSummary(plant), nil
}

// DeletePlant soft-deletes the target plant. Not-found semantics are
// identical to EditPlant's: missing, soft-deleted and foreign-owned rows
// are indistinguishable.
func (s *PlantService) DeletePlant(ctx context.Context, ownerID uint, plantID string) error {
	plant, err := s.findOwned(ctx, plantID, ownerID)
	if err != nil {
		return err
	}

	if err := s.plantRepo.SoftDelete(ctx, plant); err != nil {
		observability.PlantOperations.WithLabelValues("delete", "error").Inc()
		return err
	}
	cache.InvalidatePlantList(ctx, ownerID)
	observability.PlantOperations.WithLabelValues("delete", "success").Inc()
	return nil
}

// PlantAttachments returns the attachment history of an owned plant,
// newest first. Not-found semantics are identical to EditPlant's.
func (s *PlantService) PlantAttachments(ctx context.Context, ownerID uint, plantID string) ([]*models.Attachment, error) {
	plant, err := s.findOwned(ctx, plantID, ownerID)
	if err != nil {
		return nil, err
	}
	return s.attachments.ListForPlant(ctx, plant.ID)
}

// WaterPlant appends a watering record to an owned plant and returns it.
func (s *PlantService) WaterPlant(ctx context.Context, ownerID uint, plantID string) (*models.Watering, error) {
	plant, err := s.findOwned(ctx, plantID, ownerID)
	if err != nil {
		return nil, err
	}

	watering := &models.Watering{PlantID: plant.ID}
	if err := s.wateringRepo.Create(ctx, watering); err != nil {
		return nil, err
	}
	cache.InvalidatePlantList(ctx, ownerID)
	return watering, nil
}

func validatePlantFields(name, description, color string) error {
	if err := validation.ValidatePlantName(name); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePlantDescription(description); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePlantColor(color); err != nil {
		return models.NewValidationError(err.Error())
	}
	return nil
}

// findOwned performs the single owner-scoped lookup shared by every
// targeted operation, collapsing all miss causes into NotFound.
func (s *PlantService) findOwned(ctx context.Context, plantID string, ownerID uint) (*models.Plant, error) {
	plant, err := s.plantRepo.FindOwned(ctx, plantID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Plant", plantID)
		}
		return nil, err
	}
	return plant, nil
}
