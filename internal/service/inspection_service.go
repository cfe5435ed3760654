package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vbonduro/carcheck/internal/domain"
	"github.com/vbonduro/carcheck/internal/photoproc"
	"github.com/vbonduro/carcheck/internal/photostore"
	"github.com/vbonduro/carcheck/internal/vision"
)

// inspectionRepository is the subset of store.InspectionStore that
// InspectionService requires.
type inspectionRepository interface {
	Create(ctx context.Context, in *domain.Inspection) (*domain.Inspection, error)
	GetByID(ctx context.Context, id int64) (*domain.Inspection, error)
	List(ctx context.Context) ([]*domain.Inspection, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id int64, upd domain.InspectionUpdate) error
	UpdateSignature(ctx context.Context, id int64, signature string) error
	Delete(ctx context.Context, id int64) error
}

// itemRepository is the subset of store.ItemStore that InspectionService requires.
type itemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	ListByInspectionID(ctx context.Context, inspectionID int64) ([]*domain.Item, error)
	Delete(ctx context.Context, id int64) error
}

// photoRepository is the subset of store.PhotoStore that InspectionService requires.
type photoRepository interface {
	Create(ctx context.Context, itemID int64, imageURL, storageKey, mimeType string) (*domain.Photo, error)
	GetByStorageKey(ctx context.Context, storageKey string) (*domain.Photo, error)
	ListByInspectionID(ctx context.Context, inspectionID int64) ([]*domain.Photo, error)
}

// UploadsPrefix is the URL path under which stored photos are served.
const UploadsPrefix = "/uploads/"

type InspectionService struct {
	inspections inspectionRepository
	items       itemRepository
	photos      photoRepository
	photoStg    photostore.PhotoStore
	normalizer  *photoproc.Normalizer
	analyzer    vision.DamageAnalyzer
	logger      *slog.Logger
}

// NewInspectionService wires the service. analyzer may be nil, in which case
// SuggestDefects reports domain.ErrAnalyzerUnavailable.
func NewInspectionService(
	inspections inspectionRepository,
	items itemRepository,
	photos photoRepository,
	photoStg photostore.PhotoStore,
	normalizer *photoproc.Normalizer,
	analyzer vision.DamageAnalyzer,
	logger *slog.Logger,
) *InspectionService {
	return &InspectionService{
		inspections: inspections,
		items:       items,
		photos:      photos,
		photoStg:    photoStg,
		normalizer:  normalizer,
		analyzer:    analyzer,
		logger:      logger,
	}
}

func (s *InspectionService) ListInspections(ctx context.Context) ([]*domain.Inspection, error) {
	inspections, err := s.inspections.List(ctx)
	if err != nil {
		return nil, err
	}
	if inspections == nil {
		inspections = []*domain.Inspection{}
	}
	return inspections, nil
}

// InspectionSummary is an inspection with its defect tallies, as shown on
// the dashboard.
type InspectionSummary struct {
	*domain.Inspection
	ItemCount   int
	LightCount  int
	MediumCount int
	SevereCount int
}

func (s *InspectionService) ListInspectionSummaries(ctx context.Context) ([]*InspectionSummary, error) {
	inspections, err := s.inspections.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]*InspectionSummary, 0, len(inspections))
	for _, in := range inspections {
		items, err := s.items.ListByInspectionID(ctx, in.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list items for inspection %d: %w", in.ID, err)
		}
		sum := &InspectionSummary{Inspection: in, ItemCount: len(items)}
		for _, item := range items {
			switch item.Severity {
			case domain.SeverityLight:
				sum.LightCount++
			case domain.SeverityMedium:
				sum.MediumCount++
			case domain.SeveritySevere:
				sum.SevereCount++
			}
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

// GetInspection returns the inspection with its items and their photos.
func (s *InspectionService) GetInspection(ctx context.Context, id int64) (*domain.InspectionDetail, error) {
	in, err := s.inspections.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inspection: %w", err)
	}
	if in == nil {
		return nil, fmt.Errorf("inspection %d: %w", id, domain.ErrNotFound)
	}

	items, err := s.items.ListByInspectionID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	photos, err := s.photos.ListByInspectionID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	byItem := make(map[int64][]*domain.Photo)
	for _, p := range photos {
		byItem[p.ItemID] = append(byItem[p.ItemID], p)
	}

	detail := &domain.InspectionDetail{
		Inspection: in,
		Items:      make([]*domain.ItemWithPhotos, 0, len(items)),
	}
	for _, item := range items {
		itemPhotos := byItem[item.ID]
		if itemPhotos == nil {
			itemPhotos = []*domain.Photo{}
		}
		detail.Items = append(detail.Items, &domain.ItemWithPhotos{Item: item, Photos: itemPhotos})
	}
	return detail, nil
}

func (s *InspectionService) CreateInspection(ctx context.Context, in *domain.Inspection) (*domain.Inspection, error) {
	created, err := s.inspections.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info("inspection created", "inspection_id", created.ID)
	return created, nil
}

// UpdateInspection applies a partial update and returns the stored result.
func (s *InspectionService) UpdateInspection(ctx context.Context, id int64, upd domain.InspectionUpdate) (*domain.Inspection, error) {
	if err := s.inspections.Update(ctx, id, upd); err != nil {
		return nil, err
	}
	return s.mustGet(ctx, id)
}

// UpdateSignature stores the client's signature; an empty signature clears it.
func (s *InspectionService) UpdateSignature(ctx context.Context, id int64, signature string) (*domain.Inspection, error) {
	if err := s.inspections.UpdateSignature(ctx, id, signature); err != nil {
		return nil, err
	}
	return s.mustGet(ctx, id)
}

func (s *InspectionService) mustGet(ctx context.Context, id int64) (*domain.Inspection, error) {
	in, err := s.inspections.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inspection: %w", err)
	}
	if in == nil {
		return nil, fmt.Errorf("inspection %d: %w", id, domain.ErrNotFound)
	}
	return in, nil
}

// DeleteInspection removes the inspection; the database cascades to its items
// and photo rows and each item's photo directory is removed afterwards.
func (s *InspectionService) DeleteInspection(ctx context.Context, id int64) error {
	items, err := s.items.ListByInspectionID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}
	if err := s.inspections.Delete(ctx, id); err != nil {
		return err
	}
	for _, item := range items {
		s.deleteItemPhotos(ctx, item.ID)
	}
	s.logger.Info("inspection deleted", "inspection_id", id, "items_removed", len(items))
	return nil
}

func (s *InspectionService) AddItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	in, err := s.inspections.GetByID(ctx, item.InspectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inspection: %w", err)
	}
	if in == nil {
		return nil, fmt.Errorf("inspection %d: %w", item.InspectionID, domain.ErrNotFound)
	}
	return s.items.Create(ctx, item)
}

func (s *InspectionService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	s.deleteItemPhotos(ctx, id)
	return nil
}

// itemPhotoPrefix is the photo store prefix that groups an item's photos.
func itemPhotoPrefix(itemID int64) string {
	return fmt.Sprintf("item_%d", itemID)
}

// deleteItemPhotos is best effort: the rows are already gone, so a leftover
// file is logged rather than reported.
func (s *InspectionService) deleteItemPhotos(ctx context.Context, itemID int64) {
	if err := s.photoStg.DeletePrefix(ctx, itemPhotoPrefix(itemID)); err != nil {
		s.logger.Error("failed to delete photo files", "item_id", itemID, "error", err)
	}
}

// AddPhoto normalizes the image, stores it and records it against the item.
// The stored file is removed again if the record cannot be created.
func (s *InspectionService) AddPhoto(ctx context.Context, itemID int64, imageData []byte, mimeType string) (*domain.Photo, error) {
	s.logger.Info("add photo started", "item_id", itemID, "mime_type", mimeType, "bytes", len(imageData))

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("item %d: %w", itemID, domain.ErrNotFound)
	}

	data, mimeType, err := s.normalizer.Normalize(imageData, mimeType)
	if err != nil {
		return nil, err
	}

	storageKey, err := s.photoStg.Save(ctx, itemPhotoPrefix(itemID), mimeType, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}
	s.logger.Debug("photo saved", "item_id", itemID, "storage_key", storageKey)

	photo, err := s.photos.Create(ctx, itemID, UploadsPrefix+storageKey, storageKey, mimeType)
	if err != nil {
		if stgErr := s.photoStg.Delete(ctx, storageKey); stgErr != nil {
			s.logger.Error("failed to roll back photo file", "item_id", itemID, "error", stgErr)
		}
		return nil, fmt.Errorf("failed to create photo record: %w", err)
	}

	s.logger.Info("add photo complete", "item_id", itemID, "photo_id", photo.ID)
	return photo, nil
}

// OpenPhoto returns the stored bytes of a recorded photo together with its
// record, which carries the MIME type to serve. Files with no photo row are
// not served.
func (s *InspectionService) OpenPhoto(ctx context.Context, storageKey string) (io.ReadCloser, *domain.Photo, error) {
	photo, err := s.photos.GetByStorageKey(ctx, storageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get photo: %w", err)
	}
	if photo == nil {
		return nil, nil, fmt.Errorf("photo %q: %w", storageKey, domain.ErrNotFound)
	}

	rc, err := s.photoStg.Get(ctx, storageKey)
	if errors.Is(err, photostore.ErrNotFound) {
		return nil, nil, fmt.Errorf("photo %q file: %w", storageKey, domain.ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open photo: %w", err)
	}
	return rc, photo, nil
}

// SuggestDefects asks the damage analyzer for defects visible in the photo.
// Suggestions are not stored.
func (s *InspectionService) SuggestDefects(ctx context.Context, inspectionID int64, imageData []byte, mimeType string) ([]vision.DetectedDefect, error) {
	if s.analyzer == nil {
		return nil, domain.ErrAnalyzerUnavailable
	}
	if _, err := s.mustGet(ctx, inspectionID); err != nil {
		return nil, err
	}

	data, mimeType, err := s.normalizer.Normalize(imageData, mimeType)
	if err != nil {
		return nil, err
	}

	s.logger.Info("damage analysis started", "inspection_id", inspectionID)
	result, err := s.analyzer.Analyze(ctx, bytes.NewReader(data), mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze image: %w", err)
	}
	s.logger.Info("damage analysis complete", "inspection_id", inspectionID, "defects_detected", len(result.Defects))
	s.logger.Debug("damage analysis raw response", "inspection_id", inspectionID, "response", result.RawResponse)

	if result.Defects == nil {
		return []vision.DetectedDefect{}, nil
	}
	return result.Defects, nil
}

// SeedDemo creates a sample inspection when the database is empty. It
// reports whether anything was created.
func (s *InspectionService) SeedDemo(ctx context.Context) (bool, error) {
	n, err := s.inspections.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	phone := "+1 555 0100"
	email := "john.doe@example.com"
	in, err := s.inspections.Create(ctx, &domain.Inspection{
		ClientName:  "John Doe",
		ClientPhone: &phone,
		ClientEmail: &email,
		VehicleInfo: "2023 Toyota Camry - Silver",
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed inspection: %w", err)
	}

	notes := "Minor scratch near the license plate"
	x, y := int64(150), int64(140)
	if _, err := s.items.Create(ctx, &domain.Item{
		InspectionID: in.ID,
		PartName:     "front_bumper",
		DefectType:   "scratch_light",
		Severity:     domain.SeverityLight,
		Notes:        &notes,
		PositionX:    &x,
		PositionY:    &y,
		VehicleArea:  "front",
	}); err != nil {
		return false, fmt.Errorf("failed to seed item: %w", err)
	}

	s.logger.Info("demo inspection seeded", "inspection_id", in.ID)
	return true, nil
}
