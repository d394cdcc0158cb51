package catalog

import (
	"errors"
	"testing"

	"github.com/pinmap/explorer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLocations() []core.Location {
	return []core.Location{
		{ID: "new-york", Name: "New York, USA", Latitude: 40.7128, Longitude: -74.006},
		{ID: "london", Name: "London, UK", Latitude: 51.5072, Longitude: -0.1276},
		{ID: "tokyo", Name: "Tokyo, Japan", Latitude: 35.6762, Longitude: 139.6503},
	}
}

func TestNew_IndexesLocations(t *testing.T) {
	c, err := New(sampleLocations())
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	loc, ok := c.Lookup("london")
	require.True(t, ok)
	assert.Equal(t, "London, UK", loc.Name)
}

func TestNew_DuplicateID(t *testing.T) {
	locs := append(sampleLocations(), core.Location{ID: "london", Name: "London, Ontario"})

	_, err := New(locs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func TestNew_EmptyID(t *testing.T) {
	_, err := New([]core.Location{{Name: "nowhere"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyID))
}

func TestNew_CopiesInput(t *testing.T) {
	locs := sampleLocations()
	c, err := New(locs)
	require.NoError(t, err)

	locs[0].Name = "mutated"

	first, ok := c.First()
	require.True(t, ok)
	assert.Equal(t, "New York, USA", first.Name)
}

func TestLookup_UnknownID(t *testing.T) {
	c, err := New(sampleLocations())
	require.NoError(t, err)

	_, ok := c.Lookup("atlantis")
	assert.False(t, ok)

	_, ok = c.Lookup("")
	assert.False(t, ok)
}

func TestFirst_Empty(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	_, ok := c.First()
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestAll_ReturnsCopyInOrder(t *testing.T) {
	c, err := New(sampleLocations())
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, 3)
	assert.Equal(t, "new-york", all[0].ID)
	assert.Equal(t, "tokyo", all[2].ID)

	all[0].ID = "changed"
	first, _ := c.First()
	assert.Equal(t, "new-york", first.ID)
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog

	_, ok := c.Lookup("london")
	assert.False(t, ok)
	_, ok = c.First()
	assert.False(t, ok)
	assert.Nil(t, c.All())
	assert.Equal(t, 0, c.Len())
}
