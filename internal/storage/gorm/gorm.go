// Package gormstorage implements a location source over any GORM dialect.
// The sqlite and postgres packages only open the connection.
package gormstorage

import (
	"context"
	"fmt"
	"time"

	"github.com/pinmap/explorer/internal/database"
	"github.com/pinmap/explorer/pkg/core"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LocationRecord is the stored form of a location.
// Position keeps the authored order, which decides the first location.
type LocationRecord struct {
	ID          string `gorm:"primaryKey;size:64"`
	Position    int    `gorm:"index;not null"`
	Name        string `gorm:"size:128;not null"`
	Latitude    float64
	Longitude   float64
	Description string
	ImageURL    string `gorm:"column:image_url"`
	UpdatedAt   time.Time
}

// TableName sets the table name
func (*LocationRecord) TableName() string {
	return "locations"
}

// ToCore converts the record to a location.
func (r LocationRecord) ToCore() core.Location {
	return core.Location{
		ID:          r.ID,
		Name:        r.Name,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

// FromCore builds the record stored at position.
func FromCore(loc core.Location, position int) LocationRecord {
	return LocationRecord{
		ID:          loc.ID,
		Position:    position,
		Name:        loc.Name,
		Latitude:    loc.Latitude,
		Longitude:   loc.Longitude,
		Description: loc.Description,
		ImageURL:    loc.ImageURL,
	}
}

// Source reads and writes locations through GORM.
type Source struct {
	db *gorm.DB
}

// New wraps an open connection. The source owns db and closes it.
func New(db *gorm.DB) *Source {
	return &Source{db: db}
}

// DB returns the underlying connection.
func (s *Source) DB() *gorm.DB {
	return s.db
}

// Migrate creates or updates the locations table.
func (s *Source) Migrate() error {
	if err := s.db.AutoMigrate(&LocationRecord{}); err != nil {
		return fmt.Errorf("failed to migrate locations table: %w", err)
	}
	return nil
}

// Seed replaces the stored list with locations, keeping their order.
func (s *Source) Seed(ctx context.Context, locations []core.Location) error {
	records := make([]LocationRecord, len(locations))
	for i, loc := range locations {
		records[i] = FromCore(loc, i)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&LocationRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear locations: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&records).Error; err != nil {
			return fmt.Errorf("failed to insert locations: %w", err)
		}
		return nil
	})
}

// Load returns the stored locations ordered by position, then id.
func (s *Source) Load(ctx context.Context) ([]core.Location, error) {
	var records []LocationRecord
	err := s.db.WithContext(ctx).
		Order("position").
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}

	locations := make([]core.Location, len(records))
	for i, r := range records {
		locations[i] = r.ToCore()
	}
	return locations, nil
}

// Close releases the connection.
func (s *Source) Close() error {
	return database.Close(s.db)
}
