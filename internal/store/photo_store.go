package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vbonduro/carcheck/internal/domain"
)

const photoColumns = `id, item_id, image_url, storage_key, mime_type, uploaded_at`

type PhotoStore struct {
	db *sqlx.DB
}

func NewPhotoStore(db *sqlx.DB) *PhotoStore {
	return &PhotoStore{db: db}
}

func (s *PhotoStore) Create(ctx context.Context, itemID int64, imageURL, storageKey, mimeType string) (*domain.Photo, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO inspection_photos (item_id, image_url, storage_key, mime_type) VALUES (?, ?, ?, ?)
	`, itemID, imageURL, storageKey, mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *PhotoStore) GetByID(ctx context.Context, id int64) (*domain.Photo, error) {
	photo := &domain.Photo{}
	err := s.db.GetContext(ctx, photo, `SELECT `+photoColumns+` FROM inspection_photos WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	return photo, nil
}

// GetByStorageKey looks a photo up by the key its bytes were stored under.
func (s *PhotoStore) GetByStorageKey(ctx context.Context, storageKey string) (*domain.Photo, error) {
	photo := &domain.Photo{}
	err := s.db.GetContext(ctx, photo, `SELECT `+photoColumns+` FROM inspection_photos WHERE storage_key = ?`, storageKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get photo by storage key: %w", err)
	}
	return photo, nil
}

func (s *PhotoStore) ListByItemID(ctx context.Context, itemID int64) ([]*domain.Photo, error) {
	var photos []*domain.Photo
	err := s.db.SelectContext(ctx, &photos, `
		SELECT `+photoColumns+` FROM inspection_photos WHERE item_id = ? ORDER BY id ASC
	`, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

// ListByInspectionID returns every photo attached to any item of the
// inspection.
func (s *PhotoStore) ListByInspectionID(ctx context.Context, inspectionID int64) ([]*domain.Photo, error) {
	var photos []*domain.Photo
	err := s.db.SelectContext(ctx, &photos, `
		SELECT p.id, p.item_id, p.image_url, p.storage_key, p.mime_type, p.uploaded_at
		FROM inspection_photos p
		JOIN inspection_items i ON i.id = p.item_id
		WHERE i.inspection_id = ?
		ORDER BY p.item_id ASC, p.id ASC
	`, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos for inspection: %w", err)
	}
	return photos, nil
}

func (s *PhotoStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM inspection_photos WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return requireAffected(result, "photo", id)
}
