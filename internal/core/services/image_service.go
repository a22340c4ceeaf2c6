package services

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	portsrepo "github.com/stocknest/stocknest_app/internal/core/ports/repositories"
	portssvc "github.com/stocknest/stocknest_app/internal/core/ports/services"
	"github.com/stocknest/stocknest_app/internal/imaging"
)

// ImageService manages uploaded media. Payloads are validated, downscaled and
// stored inline as data URIs on the image record. Deleting an image triggers
// the reverse cascade that purges dangling references from inventory items.
type ImageService struct {
	BaseService
	imageRepo portsrepo.ImageRepository
	cleaner   portssvc.ImageReferenceCleaner
}

var _ portssvc.ImageSvcFacade = (*ImageService)(nil)

func NewImageService(imageRepo portsrepo.ImageRepository, cleaner portssvc.ImageReferenceCleaner) *ImageService {
	return &ImageService{imageRepo: imageRepo, cleaner: cleaner}
}

func (s *ImageService) AddImage(ctx context.Context, boardID string, filename string, file io.Reader) (*domain.Image, error) {
	result, err := imaging.Process(file)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "processing upload", err)
	}

	img := domain.Image{
		ImageID:     uuid.NewString(),
		BoardID:     boardID,
		URL:         result.DataURI(),
		StoragePath: boardID + "/" + filename,
		Description: filename,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.imageRepo.SaveImage(ctx, img); err != nil {
		s.LogError(ctx, err, "failed to save image", "board_id", boardID)
		return nil, err
	}

	s.LogInfo(ctx, "image added", "image_id", img.ImageID, "board_id", boardID, "bytes", len(result.Data))
	return &img, nil
}

func (s *ImageService) GetImages(ctx context.Context, boardID string) ([]domain.Image, error) {
	return s.imageRepo.ListImagesByBoard(ctx, boardID)
}

// ReplaceImage overwrites the payload of an existing image in place. The id
// and board are preserved so items referencing the image are unaffected.
func (s *ImageService) ReplaceImage(ctx context.Context, imageID string, filename string, file io.Reader) (*domain.Image, error) {
	img, err := s.imageRepo.FindImageByID(ctx, imageID)
	if err != nil {
		return nil, err
	}

	result, err := imaging.Process(file)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "processing upload", err)
	}

	img.URL = result.DataURI()
	img.StoragePath = img.BoardID + "/" + filename
	img.Description = filename

	if err := s.imageRepo.UpdateImage(ctx, *img); err != nil {
		s.LogError(ctx, err, "failed to replace image", "image_id", imageID)
		return nil, err
	}

	s.LogInfo(ctx, "image replaced", "image_id", imageID)
	return img, nil
}

// DeleteImage removes the record first, then purges references so a crash
// between the two steps leaves only removable dangling ids, never a reference
// to a live image.
func (s *ImageService) DeleteImage(ctx context.Context, imageID string) error {
	if err := s.imageRepo.DeleteImage(ctx, imageID); err != nil {
		return err
	}

	if err := s.cleaner.RemoveImageFromItems(ctx, imageID); err != nil {
		s.LogError(ctx, err, "failed to purge image references", "image_id", imageID)
		return err
	}

	s.LogInfo(ctx, "image deleted", "image_id", imageID)
	return nil
}
