// Package widget binds a location catalog to a selection policy and a projection,
// producing the marker and panel view models a renderer consumes.
package widget

import (
	"log/slog"

	"github.com/pinmap/explorer/internal/catalog"
	"github.com/pinmap/explorer/internal/selection"
	"github.com/pinmap/explorer/pkg/core"
)

// Surface names a rendering surface.
type Surface string

const (
	SurfaceGlobe Surface = "globe"
	SurfaceMap   Surface = "map"
)

// Widget is what event handlers and renderers need from a surface.
type Widget interface {
	Surface() Surface
	Handle(e selection.Event) bool
	Resolve() (core.Location, bool)
	Panel() Panel
	Catalog() *catalog.Catalog
}

// base holds what both surfaces share: one catalog and one owned policy.
type base struct {
	catalog *catalog.Catalog
	policy  selection.Policy
	logger  *slog.Logger
}

func (b *base) Catalog() *catalog.Catalog {
	return b.catalog
}

// Handle applies an interaction event and reports whether the selection changed.
func (b *base) Handle(e selection.Event) bool {
	changed := b.policy.Apply(e)
	if changed {
		b.logger.Debug("selection changed", "event", e.String())
	}
	return changed
}

// Resolve returns the location the panel should show.
func (b *base) Resolve() (core.Location, bool) {
	return b.policy.Resolve(b.catalog)
}

// Reset drops any selection, as on unmount.
func (b *base) Reset() {
	b.policy.Reset()
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
