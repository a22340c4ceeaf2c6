package services

import (
	"context"
	"io"

	"github.com/stocknest/stocknest_app/internal/core/domain"
)

// ImageSvcFacade manages uploaded media and its referential bookkeeping.
type ImageSvcFacade interface {
	// AddImage reads and processes an uploaded file and persists it as a new
	// image on the board. The description defaults to the original filename.
	AddImage(ctx context.Context, boardID string, filename string, file io.Reader) (*domain.Image, error)

	// GetImages returns all images on a board, order unspecified.
	GetImages(ctx context.Context, boardID string) ([]domain.Image, error)

	// ReplaceImage overwrites the payload of an existing image in place:
	// same id, same board, so referencing items keep their image ids.
	ReplaceImage(ctx context.Context, imageID string, filename string, file io.Reader) (*domain.Image, error)

	// DeleteImage removes an image and purges dangling references from
	// inventory items via the reverse cascade.
	DeleteImage(ctx context.Context, imageID string) error
}
