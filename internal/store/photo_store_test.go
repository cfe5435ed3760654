package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/carcheck/internal/domain"
)

func TestPhotoStoreCreate(t *testing.T) {
	d := openTestDB(t)
	photos := NewPhotoStore(d)
	ctx := context.Background()

	in := createInspection(t, NewInspectionStore(d), "John Doe")
	item := createItem(t, NewItemStore(d), in.ID, "hood")

	photo, err := photos.Create(ctx, item.ID, "/uploads/item_1_abc.jpg", "item_1_abc.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.NotZero(t, photo.ID)
	assert.Equal(t, item.ID, photo.ItemID)
	assert.Equal(t, "/uploads/item_1_abc.jpg", photo.ImageURL)
	assert.Equal(t, "item_1_abc.jpg", photo.StorageKey)
	assert.Equal(t, "image/jpeg", photo.MimeType)
}

func TestPhotoStoreGetByStorageKey(t *testing.T) {
	d := openTestDB(t)
	photos := NewPhotoStore(d)
	ctx := context.Background()

	in := createInspection(t, NewInspectionStore(d), "John Doe")
	item := createItem(t, NewItemStore(d), in.ID, "hood")
	created, err := photos.Create(ctx, item.ID, "/uploads/item_1/a.png", "item_1/a.png", "image/png")
	require.NoError(t, err)

	got, err := photos.GetByStorageKey(ctx, "item_1/a.png")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "image/png", got.MimeType)

	missing, err := photos.GetByStorageKey(ctx, "item_1/b.png")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Storage keys are unique.
	_, err = photos.Create(ctx, item.ID, "/uploads/item_1/a.png", "item_1/a.png", "image/png")
	assert.Error(t, err)
}

func TestPhotoStoreListByInspectionID(t *testing.T) {
	d := openTestDB(t)
	inspections := NewInspectionStore(d)
	items := NewItemStore(d)
	photos := NewPhotoStore(d)
	ctx := context.Background()

	in := createInspection(t, inspections, "John Doe")
	other := createInspection(t, inspections, "Other")
	hood := createItem(t, items, in.ID, "hood")
	trunk := createItem(t, items, in.ID, "trunk")
	roof := createItem(t, items, other.ID, "roof")

	for i, itemID := range []int64{hood.ID, trunk.ID, hood.ID, roof.ID} {
		key := fmt.Sprintf("item_%d/%d.jpg", itemID, i)
		_, err := photos.Create(ctx, itemID, "/uploads/"+key, key, "image/jpeg")
		require.NoError(t, err)
	}

	list, err := photos.ListByInspectionID(ctx, in.ID)
	require.NoError(t, err)
	assert.Len(t, list, 3)
	for _, p := range list {
		assert.Contains(t, []int64{hood.ID, trunk.ID}, p.ItemID)
	}

	byItem, err := photos.ListByItemID(ctx, hood.ID)
	require.NoError(t, err)
	assert.Len(t, byItem, 2)
}

func TestPhotoStoreDelete(t *testing.T) {
	d := openTestDB(t)
	photos := NewPhotoStore(d)
	ctx := context.Background()

	in := createInspection(t, NewInspectionStore(d), "John Doe")
	item := createItem(t, NewItemStore(d), in.ID, "hood")
	photo, err := photos.Create(ctx, item.ID, "/uploads/k.jpg", "k.jpg", "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, photos.Delete(ctx, photo.ID))

	retrieved, err := photos.GetByID(ctx, photo.ID)
	require.NoError(t, err)
	assert.Nil(t, retrieved)
}

func TestPhotoStoreDelete_NotFound(t *testing.T) {
	photos := NewPhotoStore(openTestDB(t))

	err := photos.Delete(context.Background(), 99999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
