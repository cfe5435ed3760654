package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/carcheck/internal/domain"
)

func TestInspectionStoreCreate(t *testing.T) {
	inspections := NewInspectionStore(openTestDB(t))
	ctx := context.Background()

	in, err := inspections.Create(ctx, &domain.Inspection{
		ClientName:  "John Doe",
		ClientPhone: ptr("+971500000000"),
		VehicleInfo: "2023 Toyota Camry - Silver",
		VINNumber:   ptr("JTDBR32E720123456"),
	})
	require.NoError(t, err)
	assert.NotZero(t, in.ID)
	assert.Equal(t, "John Doe", in.ClientName)
	assert.Equal(t, "+971500000000", *in.ClientPhone)
	assert.Nil(t, in.ClientEmail)
	assert.Equal(t, "JTDBR32E720123456", *in.VINNumber)
	assert.Equal(t, domain.StatusInProgress, in.Status)
	assert.False(t, in.CreatedAt.IsZero())
}

func TestInspectionStoreGetByID_NotFound(t *testing.T) {
	inspections := NewInspectionStore(openTestDB(t))

	in, err := inspections.GetByID(context.Background(), 99999)
	require.NoError(t, err)
	assert.Nil(t, in)
}

func TestInspectionStoreList_NewestFirst(t *testing.T) {
	inspections := NewInspectionStore(openTestDB(t))
	ctx := context.Background()

	first := createInspection(t, inspections, "First")
	second := createInspection(t, inspections, "Second")

	list, err := inspections.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestInspectionStoreList_Empty(t *testing.T) {
	inspections := NewInspectionStore(openTestDB(t))

	list, err := inspections.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestInspectionStoreUpdate_OnlyGivenFields(t *testing.T) {
	inspections := NewInspectionStore(openTestDB(t))
	ctx := context.Background()

	in, err := inspections.Create(ctx, &domain.Inspection{
		ClientName:  "John Doe",
		VehicleInfo: "2019 Nissan Patrol",
		Color:       ptr("White"),
	})
	require.NoError(t, err)

	completed := domain.StatusCompleted
	err = inspections.Update(ctx, in.ID, domain.InspectionUpdate{
		Status:  &completed,
		Mileage: ptr("120000"),
		Color:   ptr(""),
	})
	require.NoError(t, err)

	updated, err := inspections.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, "120000", *updated.Mileage)
	assert.Nil(t, updated.Color, "empty optional field clears the column")
	assert.Equal(t, "John Doe", updated.ClientName)
	assert.Equal(t, "2019 Nissan Patrol", updated.VehicleInfo)
}

func TestInspectionStoreUpdate_NotFound(t *testing.T) {
	inspections := NewInspectionStore(openTestDB(t))

	err := inspections.Update(context.Background(), 99999, domain.InspectionUpdate{ClientName: ptr("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = inspections.Update(context.Background(), 99999, domain.InspectionUpdate{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInspectionStoreUpdateSignature(t *testing.T) {
	inspections := NewInspectionStore(openTestDB(t))
	ctx := context.Background()
	in := createInspection(t, inspections, "Signer")

	require.NoError(t, inspections.UpdateSignature(ctx, in.ID, "data:image/png;base64,AAAA"))

	updated, err := inspections.GetByID(ctx, in.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.ClientSignature)
	assert.Equal(t, "data:image/png;base64,AAAA", *updated.ClientSignature)

	assert.ErrorIs(t, inspections.UpdateSignature(ctx, 99999, "x"), domain.ErrNotFound)
}

func TestInspectionStoreDelete_CascadesToItemsAndPhotos(t *testing.T) {
	d := openTestDB(t)
	inspections := NewInspectionStore(d)
	items := NewItemStore(d)
	photos := NewPhotoStore(d)
	ctx := context.Background()

	in := createInspection(t, inspections, "Cascade")
	item := createItem(t, items, in.ID, "hood")
	photo, err := photos.Create(ctx, item.ID, "/uploads/a.jpg", "a.jpg", "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, inspections.Delete(ctx, in.ID))

	gone, err := inspections.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	goneItem, err := items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, goneItem)

	gonePhoto, err := photos.GetByID(ctx, photo.ID)
	require.NoError(t, err)
	assert.Nil(t, gonePhoto)
}

func TestInspectionStoreDelete_NotFound(t *testing.T) {
	inspections := NewInspectionStore(openTestDB(t))

	err := inspections.Delete(context.Background(), 99999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInspectionStoreCount(t *testing.T) {
	inspections := NewInspectionStore(openTestDB(t))
	ctx := context.Background()

	n, err := inspections.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	createInspection(t, inspections, "One")
	n, err = inspections.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
