package storage

import (
	"errors"
	"fmt"

	"github.com/pinmap/explorer/internal/config"
	filestorage "github.com/pinmap/explorer/internal/storage/file"
	gormstorage "github.com/pinmap/explorer/internal/storage/gorm"
	"github.com/pinmap/explorer/internal/storage/postgres"
	sqlitestorage "github.com/pinmap/explorer/internal/storage/sqlite"
	"github.com/rs/zerolog"
)

// ErrUnknownSource is returned for an unrecognised catalog.source value.
var ErrUnknownSource = errors.New("unknown catalog source")

// NewSource creates a location source based on configuration
func NewSource(cfg config.CatalogConfig, log zerolog.Logger) (Source, error) {
	switch cfg.Source {
	case "json":
		return filestorage.New(cfg.Path, filestorage.FormatJSON), nil
	case "geojson":
		return filestorage.New(cfg.Path, filestorage.FormatGeoJSON), nil
	case "sqlite":
		return sqlitestorage.New(cfg.Path, log)
	case "postgres":
		return postgres.New(cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, cfg.Source)
	}
}

var (
	_ Source = (*filestorage.Source)(nil)
	_ Source = (*gormstorage.Source)(nil)
	_ Seeder = (*gormstorage.Source)(nil)
	_ Source = (*sqlitestorage.Source)(nil)
	_ Source = (*postgres.Source)(nil)
)
