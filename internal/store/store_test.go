package store

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/carcheck/internal/db"
	"github.com/vbonduro/carcheck/internal/domain"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func ptr[T any](v T) *T { return &v }

func createInspection(t *testing.T, s *InspectionStore, clientName string) *domain.Inspection {
	t.Helper()
	in, err := s.Create(context.Background(), &domain.Inspection{
		ClientName:  clientName,
		VehicleInfo: "2023 Toyota Camry - Silver",
	})
	require.NoError(t, err)
	return in
}

func createItem(t *testing.T, s *ItemStore, inspectionID int64, part string) *domain.Item {
	t.Helper()
	item, err := s.Create(context.Background(), &domain.Item{
		InspectionID: inspectionID,
		PartName:     part,
		DefectType:   "scratch_light",
		Severity:     domain.SeverityLight,
		VehicleArea:  "front",
	})
	require.NoError(t, err)
	return item
}
