package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	"github.com/stocknest/stocknest_app/internal/core/ports/repositories"
)

// ImageRepository persists image records in the embedded database, with
// board-scoped retrieval through the board index.
type ImageRepository struct {
	db *sql.DB
}

func NewImageRepository(db *sql.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

var _ repositories.ImageRepository = (*ImageRepository)(nil)

func (r *ImageRepository) SaveImage(ctx context.Context, image domain.Image) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO item_media (image_id, board_id, url, storage_path, description, created_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		image.ImageID,
		image.BoardID,
		image.URL,
		image.StoragePath,
		image.Description,
		image.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "saving image", err)
	}
	return nil
}

func (r *ImageRepository) FindImageByID(ctx context.Context, imageID string) (*domain.Image, error) {
	var img domain.Image
	err := r.db.QueryRowContext(ctx, `
        SELECT image_id, board_id, url, storage_path, description, created_at
        FROM item_media WHERE image_id = ?`, imageID,
	).Scan(&img.ImageID, &img.BoardID, &img.URL, &img.StoragePath, &img.Description, &img.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "finding image by id", err)
	}
	return &img, nil
}

func (r *ImageRepository) ListImagesByBoard(ctx context.Context, boardID string) ([]domain.Image, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT image_id, board_id, url, storage_path, description, created_at
        FROM item_media WHERE board_id = ?`, boardID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "listing images", err)
	}
	defer rows.Close()

	images := []domain.Image{}
	for rows.Next() {
		var img domain.Image
		if err := rows.Scan(&img.ImageID, &img.BoardID, &img.URL, &img.StoragePath, &img.Description, &img.CreatedAt); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrReadFailed, "scanning image row", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "iterating image rows", err)
	}
	return images, nil
}

func (r *ImageRepository) UpdateImage(ctx context.Context, image domain.Image) error {
	result, err := r.db.ExecContext(ctx, `
        UPDATE item_media
        SET url = ?, storage_path = ?, description = ?
        WHERE image_id = ?`,
		image.URL,
		image.StoragePath,
		image.Description,
		image.ImageID,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "updating image", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "updating image", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ImageRepository) DeleteImage(ctx context.Context, imageID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM item_media WHERE image_id = ?`, imageID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "deleting image", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "deleting image", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
