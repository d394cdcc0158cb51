package sqlitestorage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pinmap/explorer/pkg/core"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.db")
	ctx := context.Background()

	src, err := New(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, path, src.Path())
	require.NoError(t, src.Seed(ctx, []core.Location{
		{ID: "lima", Name: "Lima, Peru", Latitude: -12.0464, Longitude: -77.0428},
	}))
	require.NoError(t, src.Close())

	reopened, err := New(path, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	locs, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "lima", locs[0].ID)
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	src, err := New(filepath.Join(dir, "live.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })
	require.NoError(t, src.Seed(ctx, []core.Location{{ID: "a", Name: "A"}}))

	dumpPath := filepath.Join(dir, "dump.db")
	require.NoError(t, src.Dump(dumpPath))

	copied, err := New(dumpPath, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = copied.Close() })

	locs, err := copied.Load(ctx)
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "A", locs[0].Name)
}
