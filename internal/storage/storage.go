// Package storage loads the location list from the configured source.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pinmap/explorer/internal/catalog"
	"github.com/pinmap/explorer/internal/geo"
	"github.com/pinmap/explorer/pkg/core"
)

// Source is the interface all location sources must satisfy
type Source interface {
	Load(ctx context.Context) ([]core.Location, error)
	Close() error
}

// Seeder is an optional interface for sources that can store a location list.
type Seeder interface {
	Seed(ctx context.Context, locations []core.Location) error
}

// LoadCatalog loads src and builds a catalog from it. Out-of-range
// coordinates are logged and kept.
func LoadCatalog(ctx context.Context, src Source, logger *slog.Logger) (*catalog.Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	locations, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading locations: %w", err)
	}

	for _, loc := range locations {
		if !geo.ValidCoordinates(loc.Latitude, loc.Longitude) {
			logger.Warn("location coordinates out of range",
				"id", loc.ID,
				"latitude", loc.Latitude,
				"longitude", loc.Longitude)
		}
	}

	c, err := catalog.New(locations)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	logger.Info("Catalog loaded", "locations", c.Len())
	return c, nil
}
