package selection

import (
	"github.com/pinmap/explorer/internal/catalog"
	"github.com/pinmap/explorer/pkg/core"
)

// Two resolution policies coexist and must not be mixed:
//
//   - ResolveActive: the active id of a mode-tracking Machine, or nothing.
//   - ResolveSpotlight: hovered, then selected, then the first location.

// ResolveActive returns the location of the active id.
// An id missing from the catalog resolves to no location.
func ResolveActive(c *catalog.Catalog, s State) (core.Location, bool) {
	id, ok := s.Active()
	if !ok {
		return core.Location{}, false
	}
	return c.Lookup(id)
}

// ResolveSpotlight returns the first of hovered, selected, or the catalog's
// first location that exists. Ids missing from the catalog are skipped.
func ResolveSpotlight(c *catalog.Catalog, hovered, selected string) (core.Location, bool) {
	for _, id := range []string{hovered, selected} {
		if loc, ok := c.Lookup(id); ok {
			return loc, true
		}
	}
	return c.First()
}

// Policy is a selection reducer paired with its resolution rule.
type Policy interface {
	// Apply runs one event and reports whether the selection changed.
	Apply(e Event) bool
	// Resolve returns the location to display.
	Resolve(c *catalog.Catalog) (core.Location, bool)
	// IsActive reports whether a marker should render as active.
	IsActive(id string) bool
	Reset()
}

// ModeTracking adapts a Machine to Policy.
type ModeTracking struct {
	*Machine
}

// NewModeTracking returns an idle mode-tracking policy.
func NewModeTracking() *ModeTracking {
	return &ModeTracking{Machine: NewMachine()}
}

func (p *ModeTracking) Apply(e Event) bool {
	_, changed := p.Machine.Apply(e)
	return changed
}

func (p *ModeTracking) Resolve(c *catalog.Catalog) (core.Location, bool) {
	return ResolveActive(c, p.State())
}

func (p *ModeTracking) IsActive(id string) bool {
	active, ok := p.State().Active()
	return ok && active == id
}

// Resolve applies the spotlight policy.
func (s *Spotlight) Resolve(c *catalog.Catalog) (core.Location, bool) {
	return ResolveSpotlight(c, s.hovered, s.selected)
}

// IsActive reports whether id is the persisted selection. Hover does not mark a marker active.
func (s *Spotlight) IsActive(id string) bool {
	return s.selected != "" && s.selected == id
}

var (
	_ Policy = (*ModeTracking)(nil)
	_ Policy = (*Spotlight)(nil)
)
