package database

import (
	"path/filepath"
	"testing"

	"github.com/pinmap/explorer/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN(config.DBConfig{
		Host:     "db.local",
		Port:     "6543",
		Username: "explorer",
		Password: "secret",
		Database: "places",
	})

	assert.Equal(t, "host=db.local port=6543 user=explorer password=secret dbname=places sslmode=disable", dsn)
}

func TestOpenSqlite_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.db")

	db, err := OpenSqlite(path, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	var version int
	require.NoError(t, db.Raw("PRAGMA user_version;").Scan(&version).Error)
	assert.Equal(t, 1, version)
	assert.FileExists(t, path)
}

func TestClose_Nil(t *testing.T) {
	assert.NoError(t, Close(nil))
}

func TestOpenPostgres_UnreachableHost(t *testing.T) {
	db, err := OpenPostgres(config.DBConfig{
		Host:     "127.0.0.1",
		Port:     "1",
		Username: "explorer",
		Password: "explorer",
		Database: "explorer",
	}, zerolog.Nop())

	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "failed to validate connection")
}
