package geo

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/pinmap/explorer/pkg/core"
)

// ErrInvalidCoordinates is returned when the coordinates are invalid
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

// ToSpherePosition places a latitude/longitude (degrees) on a sphere of the given radius.
// At the poles X and Z collapse toward 0, which is expected.
func ToSpherePosition(latitude, longitude, radius float64) core.Position3D {
	lat := latitude * math.Pi / 180
	lon := longitude * math.Pi / 180
	return core.Position3D{
		X: radius * math.Cos(lat) * math.Sin(lon),
		Y: radius * math.Sin(lat),
		Z: radius * math.Cos(lat) * math.Cos(lon),
	}
}

// ToMapPercent maps a latitude/longitude onto an equirectangular image as
// percentages from the top-left corner.
// Input is not validated: out-of-range coordinates yield out-of-range percentages.
func ToMapPercent(latitude, longitude float64) core.MapPosition {
	return core.MapPosition{
		Top:  (90 - latitude) / 180 * 100,
		Left: (180 + longitude) / 360 * 100,
	}
}

// ToMapPercentClamped is ToMapPercent with longitude wrapped into [-180, 180]
// and latitude clamped to [-90, 90], so the result always lies on the image.
func ToMapPercentClamped(latitude, longitude float64) core.MapPosition {
	return ToMapPercent(clampLatitude(latitude), WrapLongitude(longitude))
}

// WrapLongitude normalizes a longitude into [-180, 180]. 180 stays 180.
func WrapLongitude(longitude float64) float64 {
	if longitude >= -180 && longitude <= 180 {
		return longitude
	}
	wrapped := math.Mod(longitude+180, 360)
	if wrapped < 0 {
		wrapped += 360
	}
	return wrapped - 180
}

func clampLatitude(latitude float64) float64 {
	return math.Max(-90, math.Min(90, latitude))
}

// ValidCoordinates reports whether latitude is in [-90,90] and longitude in [-180,180].
func ValidCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}

// ParseCoordinate parses a string in the format "lat,lon" into degrees.
func ParseCoordinate(coords string) (latitude, longitude float64, err error) {
	coordsSplit := strings.Split(coords, ",")
	if len(coordsSplit) != 2 {
		return 0, 0, ErrInvalidCoordinates
	}
	latitude, err = strconv.ParseFloat(strings.TrimSpace(coordsSplit[0]), 64)
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}
	longitude, err = strconv.ParseFloat(strings.TrimSpace(coordsSplit[1]), 64)
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}
	return latitude, longitude, nil
}
