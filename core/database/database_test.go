package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "site_cms",
			TimeoutSeconds: 2,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.EqualError(t, err, "unsupported database driver: oracle")
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)

		var fk int
		require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
		assert.Equal(t, 1, fk)
	})
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", sqliteDSN(""))
	assert.Equal(t, "cms.db?_foreign_keys=on", sqliteDSN("cms.db"))
	assert.Equal(t, "file:cms.db?cache=shared&_foreign_keys=on", sqliteDSN("file:cms.db?cache=shared"))
	assert.Equal(t, "cms.db?_fk=1", sqliteDSN("cms.db?_fk=1"))
}

func TestModel_BeforeCreate(t *testing.T) {
	m := &Model{}
	require.NoError(t, m.BeforeCreate(nil))
	assert.Len(t, m.ID, 36)

	fixed := &Model{ID: "default"}
	require.NoError(t, fixed.BeforeCreate(nil))
	assert.Equal(t, "default", fixed.ID)
}
