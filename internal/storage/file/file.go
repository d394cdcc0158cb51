// Package filestorage reads a location list from a JSON or GeoJSON file.
package filestorage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pinmap/explorer/internal/geo"
	"github.com/pinmap/explorer/pkg/core"
)

// Format is the encoding of a location file.
type Format int

const (
	// FormatJSON is a plain array of locations.
	FormatJSON Format = iota
	// FormatGeoJSON is a FeatureCollection of points.
	FormatGeoJSON
)

// Source reads locations from a file on every Load.
type Source struct {
	path   string
	format Format
}

// New creates a file source. The file is not touched until Load.
func New(path string, format Format) *Source {
	return &Source{path: path, format: format}
}

// Load reads and decodes the file.
func (s *Source) Load(ctx context.Context) ([]core.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	return Decode(data, s.format)
}

// Close is a no-op; the file is not held open.
func (s *Source) Close() error {
	return nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) ([]core.Location, error) {
	if format == FormatGeoJSON {
		return geo.UnmarshalLocations(data)
	}

	var locations []core.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("decoding locations: %w", err)
	}
	return locations, nil
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".geojson") {
		return FormatGeoJSON
	}
	return FormatJSON
}
