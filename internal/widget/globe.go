package widget

import (
	"fmt"
	"log/slog"

	"github.com/pinmap/explorer/internal/catalog"
	"github.com/pinmap/explorer/internal/geo"
	"github.com/pinmap/explorer/internal/selection"
	"github.com/pinmap/explorer/pkg/core"
)

// GlobeOptions configures a globe widget.
type GlobeOptions struct {
	Radius          float64
	MarkerOffset    float64 // lifts markers off the surface
	AutoRotateSpeed float64
}

// DefaultGlobeOptions matches a globe of radius 2 viewed from z=5.
func DefaultGlobeOptions() GlobeOptions {
	return GlobeOptions{
		Radius:          2,
		MarkerOffset:    0.03,
		AutoRotateSpeed: 0.6,
	}
}

// GlobeMarker is one marker on the globe.
type GlobeMarker struct {
	Location core.Location   `json:"location"`
	Position core.Position3D `json:"position"`
	Active   bool            `json:"active"`
	Label    string          `json:"label"`
}

// Globe always shows a location while the catalog is non-empty: the hovered
// one, else the selected one, else the first.
type Globe struct {
	base
	spotlight   *selection.Spotlight
	opts        GlobeOptions
	interacting bool
}

// NewGlobe creates a globe widget with its own spotlight state.
func NewGlobe(c *catalog.Catalog, opts GlobeOptions, logger *slog.Logger) *Globe {
	spotlight := selection.NewSpotlight()
	return &Globe{
		base: base{
			catalog: c,
			policy:  spotlight,
			logger:  loggerOrDefault(logger).With("surface", string(SurfaceGlobe)),
		},
		spotlight: spotlight,
		opts:      opts,
	}
}

func (g *Globe) Surface() Surface {
	return SurfaceGlobe
}

// Markers projects every location onto the globe surface.
func (g *Globe) Markers() []GlobeMarker {
	radius := g.opts.Radius + g.opts.MarkerOffset
	locations := g.catalog.All()
	markers := make([]GlobeMarker, 0, len(locations))
	for _, loc := range locations {
		markers = append(markers, GlobeMarker{
			Location: loc,
			Position: geo.ToSpherePosition(loc.Latitude, loc.Longitude, radius),
			Active:   g.spotlight.IsActive(loc.ID),
			Label:    fmt.Sprintf("View information for %s", loc.Name),
		})
	}
	return markers
}

// NavButton is one entry of the location list drawn beside the globe.
// Click selects, focus and blur hover, the same as the markers.
type NavButton struct {
	LocationID string `json:"locationId"`
	Label      string `json:"label"`
	Pressed    bool   `json:"pressed"`
}

// Nav lists every location in catalog order. The displayed one is pressed.
func (g *Globe) Nav() []NavButton {
	displayed, ok := g.Resolve()
	locations := g.catalog.All()
	buttons := make([]NavButton, 0, len(locations))
	for _, loc := range locations {
		buttons = append(buttons, NavButton{
			LocationID: loc.ID,
			Label:      loc.Name,
			Pressed:    ok && displayed.ID == loc.ID,
		})
	}
	return buttons
}

// Panel renders the displayed location. The globe panel has no close button.
func (g *Globe) Panel() Panel {
	loc, ok := g.Resolve()
	return RenderPanel(loc, ok, PanelOptions{Placeholder: GlobePlaceholder})
}

// Spotlight exposes the hovered and selected ids.
func (g *Globe) Spotlight() *selection.Spotlight {
	return g.spotlight
}

// BeginOrbit marks the start of a user drag; auto-rotation pauses until EndOrbit.
func (g *Globe) BeginOrbit() {
	g.interacting = true
}

// EndOrbit resumes auto-rotation.
func (g *Globe) EndOrbit() {
	g.interacting = false
}

// AutoRotate reports whether the globe should spin on its own.
func (g *Globe) AutoRotate() bool {
	return !g.interacting && g.opts.AutoRotateSpeed != 0
}

func (g *Globe) AutoRotateSpeed() float64 {
	return g.opts.AutoRotateSpeed
}
