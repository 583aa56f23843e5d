// Package blob abstracts durable storage for uploaded plant images.
package blob

import (
	"context"
	"fmt"

	"verdant/internal/config"
)

// Store writes raw blobs and returns durable, client-resolvable URLs.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put stores data under key with the given content type and returns the
	// blob's durable URL.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// New constructs the Store selected by configuration.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.BlobDriver {
	case "s3":
		return NewS3Store(ctx, S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			PathStyle:       cfg.S3PathStyle,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
	case "local":
		return NewLocalStore(cfg.UploadDir), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %q", cfg.BlobDriver)
	}
}
