package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocknest/stocknest_app/internal/apperrors"
	"github.com/stocknest/stocknest_app/internal/core/domain"
)

func testImage(id, boardID string) domain.Image {
	return domain.Image{
		ImageID:     id,
		BoardID:     boardID,
		URL:         "data:image/jpeg;base64,ZmFrZQ==",
		StoragePath: boardID + "/photo.jpg",
		Description: "photo.jpg",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestSaveAndFindImage(t *testing.T) {
	repo := NewImageRepository(NewTestDB(t))
	ctx := context.Background()

	img := testImage("img-1", "b1")
	require.NoError(t, repo.SaveImage(ctx, img))

	got, err := repo.FindImageByID(ctx, "img-1")
	require.NoError(t, err)
	assert.Equal(t, img.URL, got.URL)
	assert.Equal(t, img.StoragePath, got.StoragePath)
	assert.Equal(t, img.Description, got.Description)
}

func TestListImagesByBoard(t *testing.T) {
	repo := NewImageRepository(NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveImage(ctx, testImage("img-1", "b1")))
	require.NoError(t, repo.SaveImage(ctx, testImage("img-2", "b1")))
	require.NoError(t, repo.SaveImage(ctx, testImage("img-3", "b2")))

	images, err := repo.ListImagesByBoard(ctx, "b1")
	require.NoError(t, err)
	assert.Len(t, images, 2)

	empty, err := repo.ListImagesByBoard(ctx, "empty-board")
	require.NoError(t, err)
	assert.Empty(t, empty, "empty board yields empty list, not an error")
}

func TestUpdateImageKeepsIDAndBoard(t *testing.T) {
	repo := NewImageRepository(NewTestDB(t))
	ctx := context.Background()

	img := testImage("img-1", "b1")
	require.NoError(t, repo.SaveImage(ctx, img))

	img.URL = "data:image/jpeg;base64,bmV3"
	img.Description = "replacement.jpg"
	img.StoragePath = "b1/replacement.jpg"
	require.NoError(t, repo.UpdateImage(ctx, img))

	got, err := repo.FindImageByID(ctx, "img-1")
	require.NoError(t, err)
	assert.Equal(t, "b1", got.BoardID)
	assert.Equal(t, "data:image/jpeg;base64,bmV3", got.URL)
	assert.Equal(t, "replacement.jpg", got.Description)
}

func TestUpdateMissingImage(t *testing.T) {
	repo := NewImageRepository(NewTestDB(t))

	err := repo.UpdateImage(context.Background(), testImage("missing", "b1"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteImage(t *testing.T) {
	repo := NewImageRepository(NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveImage(ctx, testImage("img-1", "b1")))
	require.NoError(t, repo.DeleteImage(ctx, "img-1"))

	_, err := repo.FindImageByID(ctx, "img-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, repo.DeleteImage(ctx, "img-1"), apperrors.ErrNotFound)
}
