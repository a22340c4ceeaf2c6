package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocknest/stocknest_app/internal/apperrors"
)

func TestAddImageStoresInlinePayload(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	img, err := env.image.AddImage(ctx, "b1", "widget.png", pngUpload(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(img.URL, "data:image/jpeg;base64,"))
	assert.Equal(t, "b1/widget.png", img.StoragePath)
	assert.Equal(t, "widget.png", img.Description)

	images, err := env.image.GetImages(ctx, "b1")
	require.NoError(t, err)
	assert.Len(t, images, 1)
}

func TestAddImageRejectsNonImagePayload(t *testing.T) {
	env := newTestEnv(t, false)

	_, err := env.image.AddImage(context.Background(), "b1", "notes.txt", strings.NewReader("plain text"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestReplaceImageKeepsIDAndReferences(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	img := env.addImage(t, "b1", "old.png")
	created, err := env.inventory.CreateItem(ctx, "b1", itemRequest("Widget", 5, img.ImageID))
	require.NoError(t, err)

	replaced, err := env.image.ReplaceImage(ctx, img.ImageID, "new.png", pngUpload(t))
	require.NoError(t, err)
	assert.Equal(t, img.ImageID, replaced.ImageID)
	assert.Equal(t, "b1", replaced.BoardID)
	assert.Equal(t, "b1/new.png", replaced.StoragePath)

	got, err := env.inventory.GetItemByID(ctx, created.ItemID)
	require.NoError(t, err)
	assert.Equal(t, []string{img.ImageID}, got.ImageIDs, "replacement leaves item references untouched")
}

func TestReplaceMissingImage(t *testing.T) {
	env := newTestEnv(t, false)

	_, err := env.image.ReplaceImage(context.Background(), "missing", "new.png", pngUpload(t))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteImagePurgesItemReferences(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	keep := env.addImage(t, "b1", "keep.png")
	doomed := env.addImage(t, "b1", "doomed.png")
	created, err := env.inventory.CreateItem(ctx, "b1", itemRequest("Widget", 5, keep.ImageID, doomed.ImageID))
	require.NoError(t, err)

	require.NoError(t, env.image.DeleteImage(ctx, doomed.ImageID))

	got, err := env.inventory.GetItemByID(ctx, created.ItemID)
	require.NoError(t, err)
	assert.Equal(t, []string{keep.ImageID}, got.ImageIDs)

	assert.ErrorIs(t, env.image.DeleteImage(ctx, doomed.ImageID), apperrors.ErrNotFound)
}

func TestDeleteLastImageRetainsItemByDefault(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	img := env.addImage(t, "b1", "only.png")
	created, err := env.inventory.CreateItem(ctx, "b1", itemRequest("Widget", 5, img.ImageID))
	require.NoError(t, err)

	require.NoError(t, env.image.DeleteImage(ctx, img.ImageID))

	got, err := env.inventory.GetItemByID(ctx, created.ItemID)
	require.NoError(t, err)
	assert.Empty(t, got.ImageIDs, "the item survives with an empty image list")
}

func TestDeleteLastImageRemovesItemInLegacyMode(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()

	img := env.addImage(t, "b1", "only.png")
	created, err := env.inventory.CreateItem(ctx, "b1", itemRequest("Widget", 5, img.ImageID))
	require.NoError(t, err)

	require.NoError(t, env.image.DeleteImage(ctx, img.ImageID))

	_, err = env.inventory.GetItemByID(ctx, created.ItemID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "legacy mode deletes items left without images")
}
