// Package catalog holds the immutable, ordered location list of one rendering session.
package catalog

import (
	"errors"
	"fmt"

	"github.com/pinmap/explorer/pkg/core"
)

var (
	// ErrDuplicateID is returned when two locations share an id.
	ErrDuplicateID = errors.New("duplicate location id")
	// ErrEmptyID is returned when a location has no id.
	ErrEmptyID = errors.New("location id is empty")
)

// Catalog is an ordered, read-only set of locations indexed by id.
// It is safe for concurrent reads since nothing mutates it after New.
type Catalog struct {
	locations []core.Location
	index     map[string]int
}

// New copies locations into a catalog, preserving order.
func New(locations []core.Location) (*Catalog, error) {
	c := &Catalog{
		locations: make([]core.Location, len(locations)),
		index:     make(map[string]int, len(locations)),
	}
	copy(c.locations, locations)

	for i, loc := range c.locations {
		if loc.ID == "" {
			return nil, fmt.Errorf("location %d: %w", i, ErrEmptyID)
		}
		if prev, ok := c.index[loc.ID]; ok {
			return nil, fmt.Errorf("%w: %q at %d and %d", ErrDuplicateID, loc.ID, prev, i)
		}
		c.index[loc.ID] = i
	}
	return c, nil
}

// Lookup returns the location with the given id. Unknown and empty ids report false.
func (c *Catalog) Lookup(id string) (core.Location, bool) {
	if c == nil || id == "" {
		return core.Location{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return core.Location{}, false
	}
	return c.locations[i], true
}

// First returns the first location in list order.
func (c *Catalog) First() (core.Location, bool) {
	if c == nil || len(c.locations) == 0 {
		return core.Location{}, false
	}
	return c.locations[0], true
}

// All returns a copy of the locations in list order.
func (c *Catalog) All() []core.Location {
	if c == nil {
		return nil
	}
	out := make([]core.Location, len(c.locations))
	copy(out, c.locations)
	return out
}

// Len returns the number of locations.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.locations)
}
