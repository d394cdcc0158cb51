package gormstorage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pinmap/explorer/internal/database"
	"github.com/pinmap/explorer/pkg/core"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T) *Source {
	t.Helper()
	db, err := database.OpenSqlite(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)

	s := New(db)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoad_Empty(t *testing.T) {
	s := newTestSource(t)

	locs, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, locs)
}

func TestSeed_KeepsOrder(t *testing.T) {
	s := newTestSource(t)
	ctx := context.Background()

	// authored order differs from id order
	input := []core.Location{
		{ID: "rio", Name: "Rio de Janeiro, Brazil", Latitude: -22.9068, Longitude: -43.1729},
		{ID: "cairo", Name: "Cairo, Egypt", Latitude: 30.0444, Longitude: 31.2357, ImageURL: "https://example.com/cairo.jpg"},
		{ID: "oslo", Name: "Oslo, Norway", Latitude: 59.9139, Longitude: 10.7522},
	}
	require.NoError(t, s.Seed(ctx, input))

	locs, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, input, locs)
}

func TestSeed_Replaces(t *testing.T) {
	s := newTestSource(t)
	ctx := context.Background()

	require.NoError(t, s.Seed(ctx, []core.Location{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
	}))
	require.NoError(t, s.Seed(ctx, []core.Location{
		{ID: "b", Name: "B renamed"},
	}))

	locs, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "B renamed", locs[0].Name)
}

func TestSeed_EmptyClears(t *testing.T) {
	s := newTestSource(t)
	ctx := context.Background()

	require.NoError(t, s.Seed(ctx, []core.Location{{ID: "a", Name: "A"}}))
	require.NoError(t, s.Seed(ctx, nil))

	locs, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, locs)
}

func TestRecordConversion(t *testing.T) {
	loc := core.Location{ID: "x", Name: "X", Latitude: 1, Longitude: 2, Description: "d", ImageURL: "u"}

	r := FromCore(loc, 7)
	assert.Equal(t, 7, r.Position)
	assert.Equal(t, loc, r.ToCore())
	assert.Equal(t, "locations", (&LocationRecord{}).TableName())
}
