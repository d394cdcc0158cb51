// Package sqlitestorage serves locations from a SQLite file, or from memory
// when no path is configured.
package sqlitestorage

import (
	"fmt"
	"strings"

	"github.com/pinmap/explorer/internal/database"
	gormstorage "github.com/pinmap/explorer/internal/storage/gorm"
	"github.com/rs/zerolog"
)

// Source wraps the GORM source for SQLite.
type Source struct {
	*gormstorage.Source
	path string
}

// New opens the database at path and migrates the locations table.
func New(path string, log zerolog.Logger) (*Source, error) {
	db, err := database.OpenSqlite(path, log)
	if err != nil {
		return nil, err
	}

	src := &Source{Source: gormstorage.New(db), path: path}
	if err := src.Migrate(); err != nil {
		_ = src.Close()
		return nil, err
	}
	return src, nil
}

// Path returns the database file, or "" for memory.
func (s *Source) Path() string {
	return s.path
}

// Dump writes a consistent copy of the database to path using VACUUM INTO.
func (s *Source) Dump(path string) error {
	if err := s.DB().Exec("VACUUM INTO '" + strings.ReplaceAll(path, "'", "''") + "';").Error; err != nil {
		return fmt.Errorf("failed to dump sqlite database: %w", err)
	}
	return nil
}
