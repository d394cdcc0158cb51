package widget

import (
	"fmt"
	"log/slog"

	"github.com/pinmap/explorer/internal/catalog"
	"github.com/pinmap/explorer/internal/geo"
	"github.com/pinmap/explorer/internal/selection"
	"github.com/pinmap/explorer/pkg/core"
)

// MapOptions configures a flat map widget.
type MapOptions struct {
	ImageURL string
	// Normalize wraps longitude and clamps latitude so markers stay on the image.
	Normalize bool
}

// Tooltip is the inline bubble drawn next to the active map marker.
type Tooltip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MapMarker is one marker on the map image.
type MapMarker struct {
	Location core.Location    `json:"location"`
	Position core.MapPosition `json:"position"`
	Active   bool             `json:"active"`
	Label    string           `json:"label"`
	Tooltip  *Tooltip         `json:"tooltip,omitempty"`
}

// Map shows a location only while one is active, tracked by interaction mode.
type Map struct {
	base
	machine *selection.ModeTracking
	opts    MapOptions
}

// NewMap creates a map widget with its own mode-tracking state.
func NewMap(c *catalog.Catalog, opts MapOptions, logger *slog.Logger) *Map {
	machine := selection.NewModeTracking()
	return &Map{
		base: base{
			catalog: c,
			policy:  machine,
			logger:  loggerOrDefault(logger).With("surface", string(SurfaceMap)),
		},
		machine: machine,
		opts:    opts,
	}
}

func (m *Map) Surface() Surface {
	return SurfaceMap
}

// State returns the current (activeId, mode) pair.
func (m *Map) State() selection.State {
	return m.machine.State()
}

// ImageURL is the map backdrop.
func (m *Map) ImageURL() string {
	return m.opts.ImageURL
}

// Markers places every location on the map image.
func (m *Map) Markers() []MapMarker {
	locations := m.catalog.All()
	markers := make([]MapMarker, 0, len(locations))
	for _, loc := range locations {
		marker := MapMarker{
			Location: loc,
			Position: m.project(loc),
			Active:   m.machine.IsActive(loc.ID),
			Label:    fmt.Sprintf("Show details for %s", loc.Name),
		}
		if marker.Active {
			marker.Tooltip = &Tooltip{Title: loc.Name, Description: loc.Description}
		}
		markers = append(markers, marker)
	}
	return markers
}

// Panel renders the active location, or the prompt when nothing is active.
func (m *Map) Panel() Panel {
	loc, ok := m.Resolve()
	return RenderPanel(loc, ok, PanelOptions{Placeholder: MapPlaceholder, Closable: true})
}

func (m *Map) project(loc core.Location) core.MapPosition {
	if m.opts.Normalize {
		return geo.ToMapPercentClamped(loc.Latitude, loc.Longitude)
	}
	return geo.ToMapPercent(loc.Latitude, loc.Longitude)
}

var (
	_ Widget = (*Globe)(nil)
	_ Widget = (*Map)(nil)
)
