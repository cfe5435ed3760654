package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenForTesting(t *testing.T) {
	d, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	assert.NoError(t, d.Ping())
}

func TestMigrationsApply(t *testing.T) {
	d, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	for _, table := range []string{"inspections", "inspection_items", "inspection_photos"} {
		var name string
		err := d.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		assert.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestOpenForTesting_IsolatedDatabases(t *testing.T) {
	first, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = first.Close() })

	second, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	_, err = first.Exec(`INSERT INTO inspections (client_name, vehicle_info) VALUES ('A', 'B')`)
	require.NoError(t, err)

	var n int
	require.NoError(t, second.Get(&n, "SELECT COUNT(*) FROM inspections"))
	assert.Zero(t, n)
}

func TestForeignKeyCascade(t *testing.T) {
	d, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	res, err := d.Exec(`INSERT INTO inspections (client_name, vehicle_info) VALUES ('Jane', '2020 Honda Civic')`)
	require.NoError(t, err)
	inspectionID, err := res.LastInsertId()
	require.NoError(t, err)

	res, err = d.Exec(`INSERT INTO inspection_items (inspection_id, part_name, defect_type, severity, vehicle_area)
		VALUES (?, 'hood', 'rust', 'light', 'front')`, inspectionID)
	require.NoError(t, err)
	itemID, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = d.Exec(`INSERT INTO inspection_photos (item_id, image_url, storage_key) VALUES (?, '/uploads/a.jpg', 'a.jpg')`, itemID)
	require.NoError(t, err)

	_, err = d.Exec(`DELETE FROM inspections WHERE id = ?`, inspectionID)
	require.NoError(t, err)

	var items, photos int
	require.NoError(t, d.Get(&items, "SELECT COUNT(*) FROM inspection_items"))
	require.NoError(t, d.Get(&photos, "SELECT COUNT(*) FROM inspection_photos"))
	assert.Zero(t, items)
	assert.Zero(t, photos)
}

func TestOpenFile_MigratesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "inspections.db")

	d, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, d.Close())

	// Reopening an already-migrated database must not fail.
	d, err = Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	var version int
	require.NoError(t, d.Get(&version, "SELECT version FROM schema_migrations"))
	assert.Equal(t, 3, version)
}
