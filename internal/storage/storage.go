package storage

import (
	"context"
	"time"
)

// DefaultPresignedURLExpiry is used when a caller passes no expiry.
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage defines the object storage operations used for session photos.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that accepts a PUT of
	// the object with the given content type.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL to GET the object.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	DeleteObject(ctx context.Context, objectKey string) error
}
