package geo

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pinmap/explorer/pkg/core"
	geom "github.com/peterstace/simplefeatures/geom"
)

// GeoJSON points are stored as (X: longitude, Y: latitude) in EPSG:4326.
// No reprojection happens here.

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string            `json:"type"`
	ID         json.RawMessage   `json:"id,omitempty"`
	Geometry   geom.Point        `json:"geometry"`
	Properties featureProperties `json:"properties"`
}

type featureProperties struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// LocationPoint returns the location as a 2D point with X=longitude, Y=latitude.
// Non-finite coordinates are rejected.
func LocationPoint(loc core.Location) (geom.Point, error) {
	point, err := geom.NewPoint(
		geom.Coordinates{
			XY: geom.XY{X: loc.Longitude, Y: loc.Latitude},
		},
	)
	if err != nil {
		return geom.Point{}, fmt.Errorf("location %q: %w", loc.ID, err)
	}
	return point, nil
}

// MarshalLocations encodes locations as a GeoJSON FeatureCollection of points.
// List order is preserved.
func MarshalLocations(locations []core.Location) ([]byte, error) {
	fc := featureCollection{
		Type:     "FeatureCollection",
		Features: make([]feature, 0, len(locations)),
	}
	for _, loc := range locations {
		point, err := LocationPoint(loc)
		if err != nil {
			return nil, err
		}
		id, err := json.Marshal(loc.ID)
		if err != nil {
			return nil, err
		}
		fc.Features = append(fc.Features, feature{
			Type:     "Feature",
			ID:       id,
			Geometry: point,
			Properties: featureProperties{
				Name:        loc.Name,
				Description: loc.Description,
				ImageURL:    loc.ImageURL,
			},
		})
	}
	return json.Marshal(fc)
}

// featureID reads a GeoJSON feature id, which may be a string or a number.
// Numbers keep their literal text. A missing or null id yields "".
func featureID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}

	switch id := v.(type) {
	case string:
		return id, nil
	case json.Number:
		return id.String(), nil
	default:
		return "", fmt.Errorf("id must be a string or number, got %s", raw)
	}
}

// UnmarshalLocations decodes a GeoJSON FeatureCollection of points into locations.
// Every feature must carry a string or numeric id and a non-empty point geometry.
func UnmarshalLocations(input []byte) ([]core.Location, error) {
	var fc featureCollection
	if err := json.Unmarshal(input, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse feature collection: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("expected FeatureCollection, got %q", fc.Type)
	}

	locations := make([]core.Location, 0, len(fc.Features))
	for i, f := range fc.Features {
		id, err := featureID(f.ID)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		if id == "" {
			return nil, fmt.Errorf("feature %d has no id", i)
		}
		coords, ok := f.Geometry.Coordinates()
		if !ok {
			return nil, fmt.Errorf("feature %q: %w", id, ErrInvalidCoordinates)
		}
		locations = append(locations, core.Location{
			ID:          id,
			Name:        f.Properties.Name,
			Latitude:    coords.Y,
			Longitude:   coords.X,
			Description: f.Properties.Description,
			ImageURL:    f.Properties.ImageURL,
		})
	}
	return locations, nil
}
