// pkg/core/location.go
package core

// Location is a named geographic point with display media.
// Locations are supplied once per session and never mutated.
type Location struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`  // degrees, [-90, 90]
	Longitude   float64 `json:"longitude"` // degrees, [-180, 180]
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// Position3D is a point in globe space. Longitude 0 faces +Z and increases toward +X.
type Position3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"` // north
	Z float64 `json:"z"`
}

// MapPosition is a marker offset on a rectangular map image, in percent of
// the image height (Top) and width (Left).
type MapPosition struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
}
