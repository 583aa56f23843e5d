// Package service contains the business logic for plant lifecycle and
// attachment handling.
package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"image"
	"net/http"
	"strings"
	"time"

	// Register decoders for the image formats accepted as plant pictures.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"verdant/internal/blob"
	"verdant/internal/config"
	"verdant/internal/models"
	"verdant/internal/observability"
	"verdant/internal/repository"
)

const defaultMaxUploadSizeMB = 10

// AttachmentService uploads plant images to blob storage and keeps the
// attachment bookkeeping rows that tie durable URLs to plants.
type AttachmentService struct {
	store              blob.Store
	repo               repository.AttachmentRepository
	maxUploadSizeBytes int64
}

// NewAttachmentService creates an attachment service backed by the given
// blob store and repository.
func NewAttachmentService(store blob.Store, repo repository.AttachmentRepository, cfg *config.Config) *AttachmentService {
	maxUploadSizeMB := defaultMaxUploadSizeMB
	if cfg != nil && cfg.UploadMaxSizeMB > 0 {
		maxUploadSizeMB = cfg.UploadMaxSizeMB
	}
	return &AttachmentService{
		store:              store,
		repo:               repo,
		maxUploadSizeBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

// UploadFile decodes a base64 (optionally data-URI wrapped) image payload,
// validates it, writes it to blob storage and returns the durable URL.
// Nothing is persisted to the database here; a failure leaves no trace
// beyond, at worst, an orphaned blob.
func (s *AttachmentService) UploadFile(ctx context.Context, userID uint, payload string) (string, error) {
	content, err := decodeImagePayload(payload)
	if err != nil {
		return "", models.NewValidationError("Invalid image payload")
	}
	if len(content) == 0 {
		return "", models.NewValidationError("No image data supplied")
	}
	if int64(len(content)) > s.maxUploadSizeBytes {
		return "", models.NewValidationError(fmt.Sprintf("Image too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}

	detectedType := http.DetectContentType(content)
	if !isAllowedImageMIME(detectedType) {
		return "", models.NewValidationError("Invalid image type")
	}
	_, format, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return "", models.NewValidationError("Invalid image file")
	}

	key := fmt.Sprintf("%s.%s", buildDeterministicImageHash(userID, content), extensionForFormat(format))

	start := time.Now()
	url, err := s.store.Put(ctx, key, content, detectedType)
	observability.ObserveUpload(start, err)
	if err != nil {
		return "", models.NewUploadError(err)
	}
	return url, nil
}

// RecordAttachment inserts the bookkeeping row linking url to the plant.
func (s *AttachmentService) RecordAttachment(ctx context.Context, plantID, url, purpose string) error {
	return s.repo.Create(ctx, &models.Attachment{
		PlantID:   plantID,
		SourceURL: url,
		Purpose:   purpose,
	})
}

// ListForPlant returns the plant's attachment rows, newest first.
// Ownership is the caller's concern; only owned plant IDs reach here.
func (s *AttachmentService) ListForPlant(ctx context.Context, plantID string) ([]*models.Attachment, error) {
	return s.repo.ListByPlant(ctx, plantID)
}

// decodeImagePayload accepts either a bare base64 string or a data URI
// ("data:image/png;base64,....") and returns the raw bytes.
func decodeImagePayload(payload string) ([]byte, error) {
	trimmed := strings.TrimSpace(payload)
	if strings.HasPrefix(trimmed, "data:") {
		idx := strings.Index(trimmed, ",")
		if idx < 0 {
			return nil, fmt.Errorf("malformed data URI")
		}
		trimmed = trimmed[idx+1:]
	}
	return base64.StdEncoding.DecodeString(trimmed)
}

func isAllowedImageMIME(contentType string) bool {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	default:
		return false
	}
}

func extensionForFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "jpeg", "jpg":
		return "jpg"
	case "png":
		return "png"
	case "gif":
		return "gif"
	case "webp":
		return "webp"
	default:
		return "bin"
	}
}

// buildDeterministicImageHash keys blobs by owner and content so re-uploads
// of the same image by the same user land on the same object.
func buildDeterministicImageHash(userID uint, content []byte) string {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%d:", userID)
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}
