package selection

import (
	"fmt"
	"strings"
)

// Mode is the interaction channel that set the current selection.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeHover
	ModeFocus
	ModeClick
	ModeTouch
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeHover:
		return "hover"
	case ModeFocus:
		return "focus"
	case ModeClick:
		return "click"
	case ModeTouch:
		return "touch"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Sticky reports whether a selection made in this mode survives loss of focus.
// Only click is sticky; a touch selection still clears on blur.
func (m Mode) Sticky() bool {
	return m == ModeClick
}

// Kind identifies a marker interaction.
type Kind uint8

const (
	HoverEnter Kind = iota + 1
	HoverLeave
	FocusEnter
	FocusLeave
	Click
	TouchStart
	Close
)

var kindNames = map[Kind]string{
	HoverEnter: "hoverEnter",
	HoverLeave: "hoverLeave",
	FocusEnter: "focusEnter",
	FocusLeave: "focusLeave",
	Click:      "click",
	TouchStart: "touchStart",
	Close:      "close",
}

// Kinds lists every interaction kind in declaration order.
func Kinds() []Kind {
	return []Kind{HoverEnter, HoverLeave, FocusEnter, FocusLeave, Click, TouchStart, Close}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Targeted reports whether the kind names the marker it selects.
// Leave and close events act on whatever is active and carry no id.
func (k Kind) Targeted() bool {
	switch k {
	case HoverEnter, FocusEnter, Click, TouchStart:
		return true
	default:
		return false
	}
}

// ParseKind resolves a kind from its name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown interaction kind: %q", s)
}

// Event is one interaction tagged with the id of the marker it came from.
// LocationID is ignored for Close.
type Event struct {
	Kind       Kind
	LocationID string
}

func (e Event) String() string {
	if e.Kind == Close || e.LocationID == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + "(" + e.LocationID + ")"
}
