package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	"github.com/stocknest/stocknest_app/internal/core/ports/repositories"
)

type ImageRepository struct {
	db *pgxpool.Pool
}

func NewImageRepository(db *pgxpool.Pool) *ImageRepository {
	return &ImageRepository{db: db}
}

var _ repositories.ImageRepository = (*ImageRepository)(nil)

func (r *ImageRepository) SaveImage(ctx context.Context, image domain.Image) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO item_media (image_id, owner_id, board_id, url, storage_path, description, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		image.ImageID,
		ownerFromCtx(ctx),
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
	err := r.db.QueryRow(ctx, `
        SELECT image_id, board_id, url, storage_path, description, created_at
        FROM item_media WHERE image_id = $1 AND owner_id = $2;`,
		imageID, ownerFromCtx(ctx),
	).Scan(&img.ImageID, &img.BoardID, &img.URL, &img.StoragePath, &img.Description, &img.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "finding image by id", err)
	}
	return &img, nil
}

func (r *ImageRepository) ListImagesByBoard(ctx context.Context, boardID string) ([]domain.Image, error) {
	rows, err := r.db.Query(ctx, `
        SELECT image_id, board_id, url, storage_path, description, created_at
        FROM item_media WHERE board_id = $1 AND owner_id = $2;`,
		boardID, ownerFromCtx(ctx))
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
	if rows.Err() != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "iterating image rows", rows.Err())
	}
	return images, nil
}

func (r *ImageRepository) UpdateImage(ctx context.Context, image domain.Image) error {
	cmdTag, err := r.db.Exec(ctx, `
        UPDATE item_media
        SET url = $1, storage_path = $2, description = $3
        WHERE image_id = $4 AND owner_id = $5;`,
		image.URL,
		image.StoragePath,
		image.Description,
		image.ImageID,
		ownerFromCtx(ctx),
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "updating image", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ImageRepository) DeleteImage(ctx context.Context, imageID string) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM item_media WHERE image_id = $1 AND owner_id = $2;`,
		imageID, ownerFromCtx(ctx))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "deleting image", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
