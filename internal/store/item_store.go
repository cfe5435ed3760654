package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vbonduro/carcheck/internal/domain"
)

const itemColumns = `id, inspection_id, part_name, defect_type, severity, notes,
	position_x, position_y, vehicle_area, created_at`

type ItemStore struct {
	db *sqlx.DB
}

func NewItemStore(db *sqlx.DB) *ItemStore {
	return &ItemStore{db: db}
}

func (s *ItemStore) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO inspection_items (inspection_id, part_name, defect_type, severity, notes,
			position_x, position_y, vehicle_area)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, item.InspectionID, item.PartName, item.DefectType, string(item.Severity), item.Notes,
		item.PositionX, item.PositionY, item.VehicleArea)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *ItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	item := &domain.Item{}
	err := s.db.GetContext(ctx, item, `SELECT `+itemColumns+` FROM inspection_items WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// ListByInspectionID returns the inspection's items in the order they were
// recorded, which is the numbering used on the report diagram.
func (s *ItemStore) ListByInspectionID(ctx context.Context, inspectionID int64) ([]*domain.Item, error) {
	var items []*domain.Item
	err := s.db.SelectContext(ctx, &items, `
		SELECT `+itemColumns+` FROM inspection_items
		WHERE inspection_id = ? ORDER BY id ASC
	`, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Delete removes the item and, through the cascade, its photos.
func (s *ItemStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM inspection_items WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return requireAffected(result, "item", id)
}
