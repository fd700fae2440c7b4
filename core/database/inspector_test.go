package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inspectedItem struct {
	Model
	Name        string
	Description string
}

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_items (id INTEGER PRIMARY KEY, name TEXT NOT NULL, description TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_items")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "integer", colMap["id"].Type)
	assert.Equal(t, "PRI", colMap["id"].Key)
	assert.Equal(t, "NO", colMap["name"].Null)
	assert.Equal(t, "text", colMap["description"].Type)

	// PRAGMA table_info returns an empty result for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestCheckSchema(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	t.Run("Missing table", func(t *testing.T) {
		issues, err := CheckSchema(db, &inspectedItem{})
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, "inspected_items", issues[0].Table)
		assert.ElementsMatch(t, []string{"id", "created_at", "updated_at", "name", "description"}, issues[0].Missing)
	})

	t.Run("Missing column", func(t *testing.T) {
		require.NoError(t, db.Exec("CREATE TABLE inspected_items (id TEXT PRIMARY KEY, created_at DATETIME, updated_at DATETIME, name TEXT)").Error)
		issues, err := CheckSchema(db, &inspectedItem{})
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, []string{"description"}, issues[0].Missing)
	})

	t.Run("In sync", func(t *testing.T) {
		require.NoError(t, db.Migrator().AutoMigrate(&inspectedItem{}))
		issues, err := CheckSchema(db, &inspectedItem{})
		require.NoError(t, err)
		assert.Empty(t, issues)
	})
}
