package dto

import (
	"time"

	"github.com/stocknest/stocknest_app/internal/core/domain"
)

// ImageResponse defines the data returned for an image record.
type ImageResponse struct {
	ImageID     string    `json:"imageID"`
	BoardID     string    `json:"boardID"`
	URL         string    `json:"url"`
	StoragePath string    `json:"storagePath"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToImageResponse converts a domain.Image to an ImageResponse DTO.
func ToImageResponse(img *domain.Image) ImageResponse {
	return ImageResponse{
		ImageID:     img.ImageID,
		BoardID:     img.BoardID,
		URL:         img.URL,
		StoragePath: img.StoragePath,
		Description: img.Description,
		CreatedAt:   img.CreatedAt,
	}
}

// ToListImageResponse converts a slice of domain images to response DTOs.
func ToListImageResponse(images []domain.Image) []ImageResponse {
	res := make([]ImageResponse, len(images))
	for i := range images {
		res[i] = ToImageResponse(&images[i])
	}
	return res
}
