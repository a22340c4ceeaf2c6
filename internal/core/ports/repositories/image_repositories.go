package repositories

import (
	"context"

	"github.com/stocknest/stocknest_app/internal/core/domain"
)

// ImageReader defines read operations for image records.
type ImageReader interface {
	// FindImageByID retrieves a specific image by its unique identifier.
	// Returns apperrors.ErrNotFound if no image has that id.
	FindImageByID(ctx context.Context, imageID string) (*domain.Image, error)

	// ListImagesByBoard retrieves every image belonging to the given board.
	// Order is unspecified; consumers may re-sort.
	ListImagesByBoard(ctx context.Context, boardID string) ([]domain.Image, error)
}

// ImageWriter defines write operations for image records.
type ImageWriter interface {
	// SaveImage persists a new image record.
	SaveImage(ctx context.Context, image domain.Image) error

	// UpdateImage overwrites an existing image record in place (same id, same board).
	// Returns apperrors.ErrNotFound if no image has that id.
	UpdateImage(ctx context.Context, image domain.Image) error

	// DeleteImage removes an image record.
	// Returns apperrors.ErrNotFound if no image has that id.
	DeleteImage(ctx context.Context, imageID string) error
}

// ImageRepository combines all image repository interfaces.
type ImageRepository interface {
	ImageReader
	ImageWriter
}
