package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestToSpherePosition_DistanceEqualsRadius(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 7.5 {
		for lon := -180.0; lon <= 180; lon += 11.25 {
			p := ToSpherePosition(lat, lon, 2)
			dist := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
			if math.Abs(dist-2) > tolerance {
				t.Fatalf("lat=%v lon=%v: expected distance 2, got %v", lat, lon, dist)
			}
		}
	}
}

func TestToSpherePosition_NorthPole(t *testing.T) {
	p := ToSpherePosition(90, 0, 3)

	assert.InDelta(t, 0, p.X, tolerance)
	assert.InDelta(t, 3, p.Y, tolerance)
	assert.InDelta(t, 0, p.Z, tolerance)
}

func TestToSpherePosition_SouthPole(t *testing.T) {
	p := ToSpherePosition(-90, 0, 3)

	assert.InDelta(t, 0, p.X, tolerance)
	assert.InDelta(t, -3, p.Y, tolerance)
	assert.InDelta(t, 0, p.Z, tolerance)
}

func TestToSpherePosition_Origin(t *testing.T) {
	p := ToSpherePosition(0, 0, 3)

	assert.InDelta(t, 0, p.X, tolerance)
	assert.InDelta(t, 0, p.Y, tolerance)
	assert.InDelta(t, 3, p.Z, tolerance)
}

func TestToSpherePosition_EastIsPositiveX(t *testing.T) {
	p := ToSpherePosition(0, 90, 1)

	assert.InDelta(t, 1, p.X, tolerance)
	assert.InDelta(t, 0, p.Z, tolerance)
}

func TestToSpherePosition_ZeroRadius(t *testing.T) {
	p := ToSpherePosition(51.5, -0.12, 0)

	assert.Zero(t, p.X)
	assert.Zero(t, p.Y)
	assert.Zero(t, p.Z)
}

func TestToMapPercent_Corners(t *testing.T) {
	topLeft := ToMapPercent(90, -180)
	assert.InDelta(t, 0, topLeft.Top, tolerance)
	assert.InDelta(t, 0, topLeft.Left, tolerance)

	bottomRight := ToMapPercent(-90, 180)
	assert.InDelta(t, 100, bottomRight.Top, tolerance)
	assert.InDelta(t, 100, bottomRight.Left, tolerance)

	center := ToMapPercent(0, 0)
	assert.InDelta(t, 50, center.Top, tolerance)
	assert.InDelta(t, 50, center.Left, tolerance)
}

func TestToMapPercent_OutOfRangeIsNotClamped(t *testing.T) {
	p := ToMapPercent(0, 200)

	assert.Greater(t, p.Left, 100.0)
}

func TestToMapPercentClamped_WrapsLongitude(t *testing.T) {
	p := ToMapPercentClamped(0, 200)
	expected := ToMapPercent(0, -160)

	assert.InDelta(t, expected.Left, p.Left, tolerance)
	assert.InDelta(t, expected.Top, p.Top, tolerance)
}

func TestToMapPercentClamped_ClampsLatitude(t *testing.T) {
	p := ToMapPercentClamped(120, 0)

	assert.InDelta(t, 0, p.Top, tolerance)
}

func TestToMapPercentClamped_InRangeUnchanged(t *testing.T) {
	assert.Equal(t, ToMapPercent(40.7128, -74.006), ToMapPercentClamped(40.7128, -74.006))
}

func TestWrapLongitude(t *testing.T) {
	assert.Equal(t, 180.0, WrapLongitude(180))
	assert.Equal(t, -180.0, WrapLongitude(-180))
	assert.InDelta(t, -160, WrapLongitude(200), tolerance)
	assert.InDelta(t, 160, WrapLongitude(-200), tolerance)
	assert.InDelta(t, 10, WrapLongitude(730), tolerance)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(90, 180))
	assert.True(t, ValidCoordinates(-90, -180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(0, -180.5))
}

func TestParseCoordinate_Valid(t *testing.T) {
	lat, lon, err := ParseCoordinate("51.5072, -0.1276")

	require.NoError(t, err)
	assert.Equal(t, 51.5072, lat)
	assert.Equal(t, -0.1276, lon)
}

func TestParseCoordinate_Invalid(t *testing.T) {
	for _, input := range []string{"", "51.5", "abc,1", "1,xyz", "1,2,3"} {
		_, _, err := ParseCoordinate(input)
		if !errors.Is(err, ErrInvalidCoordinates) {
			t.Errorf("%q: expected ErrInvalidCoordinates, got %v", input, err)
		}
	}
}
