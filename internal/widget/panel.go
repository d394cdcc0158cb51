package widget

import (
	"fmt"

	"github.com/pinmap/explorer/pkg/core"
)

// Default copy shown by the detail panel.
const (
	MapPlaceholder   = "Select a marker on the map to view stories, photography, and quick facts about the destination."
	GlobePlaceholder = ""
	CloseLabel       = "Close location details"
)

// Panel is the rendered detail panel. When Visible is false only Placeholder applies.
type Panel struct {
	Visible     bool          `json:"visible"`
	Location    core.Location `json:"location"`
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	ImageAlt    string        `json:"imageAlt,omitempty"`
	Placeholder string        `json:"placeholder,omitempty"`
	Closable    bool          `json:"closable"`
	CloseLabel  string        `json:"closeLabel,omitempty"`
}

// PanelOptions controls surface-specific panel copy.
type PanelOptions struct {
	Placeholder string
	Closable    bool
}

// RenderPanel builds the panel for a resolved location, or the placeholder when ok is false.
func RenderPanel(loc core.Location, ok bool, opts PanelOptions) Panel {
	if !ok {
		return Panel{Placeholder: opts.Placeholder}
	}
	p := Panel{
		Visible:     true,
		Location:    loc,
		Title:       loc.Name,
		Description: loc.Description,
		ImageURL:    loc.ImageURL,
		ImageAlt:    fmt.Sprintf("Photograph of %s", loc.Name),
		Closable:    opts.Closable,
	}
	if opts.Closable {
		p.CloseLabel = CloseLabel
	}
	return p
}
