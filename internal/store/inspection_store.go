package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/vbonduro/carcheck/internal/domain"
)

const inspectionColumns = `id, client_name, client_phone, client_email, vehicle_info, vin_number,
	color, mileage, engine_number, client_signature, status, created_at`

type InspectionStore struct {
	db *sqlx.DB
}

func NewInspectionStore(db *sqlx.DB) *InspectionStore {
	return &InspectionStore{db: db}
}

func (s *InspectionStore) Create(ctx context.Context, in *domain.Inspection) (*domain.Inspection, error) {
	status := in.Status
	if status == "" {
		status = domain.StatusInProgress
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO inspections (client_name, client_phone, client_email, vehicle_info, vin_number,
			color, mileage, engine_number, client_signature, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, in.ClientName, in.ClientPhone, in.ClientEmail, in.VehicleInfo, in.VINNumber,
		in.Color, in.Mileage, in.EngineNumber, in.ClientSignature, status)
	if err != nil {
		return nil, fmt.Errorf("failed to create inspection: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *InspectionStore) GetByID(ctx context.Context, id int64) (*domain.Inspection, error) {
	inspection := &domain.Inspection{}
	err := s.db.GetContext(ctx, inspection, `SELECT `+inspectionColumns+` FROM inspections WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inspection: %w", err)
	}
	return inspection, nil
}

// List returns all inspections, newest first.
func (s *InspectionStore) List(ctx context.Context) ([]*domain.Inspection, error) {
	var inspections []*domain.Inspection
	err := s.db.SelectContext(ctx, &inspections, `
		SELECT `+inspectionColumns+` FROM inspections ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	return inspections, nil
}

func (s *InspectionStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM inspections`); err != nil {
		return 0, fmt.Errorf("failed to count inspections: %w", err)
	}
	return n, nil
}

// Update applies the non-nil fields of upd. Empty optional strings are stored
// as NULL.
func (s *InspectionStore) Update(ctx context.Context, id int64, upd domain.InspectionUpdate) error {
	var (
		sets []string
		args []any
	)
	required := func(col string, v *string) {
		if v != nil {
			sets = append(sets, col+" = ?")
			args = append(args, *v)
		}
	}
	optional := func(col string, v *string) {
		if v != nil {
			sets = append(sets, col+" = ?")
			args = append(args, nullIfEmpty(*v))
		}
	}

	required("client_name", upd.ClientName)
	optional("client_phone", upd.ClientPhone)
	optional("client_email", upd.ClientEmail)
	required("vehicle_info", upd.VehicleInfo)
	optional("vin_number", upd.VINNumber)
	optional("color", upd.Color)
	optional("mileage", upd.Mileage)
	optional("engine_number", upd.EngineNumber)
	optional("client_signature", upd.ClientSignature)
	if upd.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*upd.Status))
	}

	if len(sets) == 0 {
		exists, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if exists == nil {
			return fmt.Errorf("inspection %d: %w", id, domain.ErrNotFound)
		}
		return nil
	}

	args = append(args, id)
	result, err := s.db.ExecContext(ctx,
		`UPDATE inspections SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("failed to update inspection: %w", err)
	}
	return requireAffected(result, "inspection", id)
}

func (s *InspectionStore) UpdateSignature(ctx context.Context, id int64, signature string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE inspections SET client_signature = ? WHERE id = ?
	`, nullIfEmpty(signature), id)
	if err != nil {
		return fmt.Errorf("failed to update signature: %w", err)
	}
	return requireAffected(result, "inspection", id)
}

// Delete removes the inspection; its items and photos go with it through the
// foreign-key cascade.
func (s *InspectionStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM inspections WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inspection: %w", err)
	}
	return requireAffected(result, "inspection", id)
}

func requireAffected(result sql.Result, kind string, id int64) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
