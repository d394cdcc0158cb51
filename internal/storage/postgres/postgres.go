// Package postgres serves locations from a PostgreSQL database.
package postgres

import (
	"github.com/pinmap/explorer/internal/config"
	"github.com/pinmap/explorer/internal/database"
	gormstorage "github.com/pinmap/explorer/internal/storage/gorm"
	"github.com/rs/zerolog"
)

// Source wraps the GORM source for Postgres.
type Source struct {
	*gormstorage.Source
}

// New connects with cfg and migrates the locations table.
func New(cfg config.DBConfig, log zerolog.Logger) (*Source, error) {
	db, err := database.OpenPostgres(cfg, log)
	if err != nil {
		return nil, err
	}

	src := &Source{Source: gormstorage.New(db)}
	if err := src.Migrate(); err != nil {
		_ = src.Close()
		return nil, err
	}
	return src, nil
}
