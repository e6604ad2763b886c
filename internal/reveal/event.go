package reveal

import "github.com/vovakirdan/tui-glimmer/internal/core"

// Source identifies what produced an interaction.
type Source int

const (
	SourceKey Source = iota
	SourcePointer
	SourceTouch
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceKey:
		return "key"
	case SourcePointer:
		return "pointer"
	case SourceTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// Event is one qualifying interaction: a press, a tap or a Space/Enter key.
type Event struct {
	Source     Source
	Touches    []core.Point // Active touch points, primary first
	Pointer    core.Point   // Pointer position, valid when HasPointer is set
	HasPointer bool
}

// KeyEvent builds an interaction with no coordinates.
func KeyEvent() Event {
	return Event{Source: SourceKey}
}

// PointerEvent builds an interaction at a pointer position.
func PointerEvent(x, y float64) Event {
	return Event{Source: SourcePointer, Pointer: core.Point{X: x, Y: y}, HasPointer: true}
}

// ResolvePoint picks the coordinates an interaction acts on: the primary
// touch point, else the pointer, else the center of a width × height surface.
func ResolvePoint(ev Event, width, height float64) core.Point {
	if len(ev.Touches) > 0 {
		return ev.Touches[0]
	}
	if ev.HasPointer {
		return ev.Pointer
	}
	return core.Point{X: width / 2, Y: height / 2}
}
