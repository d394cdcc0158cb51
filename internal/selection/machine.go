package selection

// State is the single active selection of a widget.
// ActiveID is empty exactly when Mode is ModeIdle.
type State struct {
	ActiveID string
	Mode     Mode
}

// Active returns the active id, if any.
func (s State) Active() (string, bool) {
	return s.ActiveID, s.ActiveID != ""
}

var idle = State{Mode: ModeIdle}

// Machine tracks which location is active and through which mode.
// Selecting a new marker implicitly deselects the previous one.
// A Machine belongs to one widget and is not safe for concurrent use.
type Machine struct {
	state State
}

// NewMachine returns a machine in the idle state.
func NewMachine() *Machine {
	return &Machine{state: idle}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Apply runs one transition and reports whether the state changed.
func (m *Machine) Apply(e Event) (State, bool) {
	next := transition(m.state, e)
	changed := next != m.state
	m.state = next
	return next, changed
}

// Reset returns the machine to idle.
func (m *Machine) Reset() {
	m.state = idle
}

func transition(s State, e Event) State {
	switch e.Kind {
	case HoverEnter:
		return open(e.LocationID, ModeHover)
	case HoverLeave:
		if s.Mode == ModeHover {
			return idle
		}
		return s
	case FocusEnter:
		return open(e.LocationID, ModeFocus)
	case FocusLeave:
		if !s.Mode.Sticky() {
			return idle
		}
		return s
	case Click:
		return toggle(s, e.LocationID, ModeClick)
	case TouchStart:
		return toggle(s, e.LocationID, ModeTouch)
	case Close:
		return idle
	default:
		return s
	}
}

func open(id string, mode Mode) State {
	if id == "" {
		return idle
	}
	return State{ActiveID: id, Mode: mode}
}

func toggle(s State, id string, mode Mode) State {
	if s.ActiveID == id && s.Mode == mode {
		return idle
	}
	return open(id, mode)
}
