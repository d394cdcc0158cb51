package selection

// Spotlight tracks a transient hovered location next to a persisted selection.
// Hover and focus set the hovered id, their leave events clear it. Click and
// touch persist a selection without toggling.
type Spotlight struct {
	hovered  string
	selected string
}

// NewSpotlight returns a spotlight with nothing hovered or selected.
func NewSpotlight() *Spotlight {
	return &Spotlight{}
}

// Hovered returns the hovered id, if any.
func (s *Spotlight) Hovered() (string, bool) {
	return s.hovered, s.hovered != ""
}

// Selected returns the selected id, if any.
func (s *Spotlight) Selected() (string, bool) {
	return s.selected, s.selected != ""
}

// Apply runs one transition and reports whether anything changed.
func (s *Spotlight) Apply(e Event) bool {
	hovered, selected := s.hovered, s.selected

	switch e.Kind {
	case HoverEnter, FocusEnter:
		s.hovered = e.LocationID
	case HoverLeave, FocusLeave:
		s.hovered = ""
	case Click, TouchStart:
		s.selected = e.LocationID
	case Close:
		s.hovered = ""
		s.selected = ""
	}

	return hovered != s.hovered || selected != s.selected
}

// Reset clears both hovered and selected ids.
func (s *Spotlight) Reset() {
	s.hovered = ""
	s.selected = ""
}
