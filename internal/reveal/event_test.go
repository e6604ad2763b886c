package reveal

import (
	"testing"

	"github.com/vovakirdan/tui-glimmer/internal/core"
)

func TestResolvePoint(t *testing.T) {
	tests := []struct {
		name     string
		ev       Event
		expected core.Point
	}{
		{
			name: "primary touch wins",
			ev: Event{
				Source:     SourceTouch,
				Touches:    []core.Point{{X: 10, Y: 20}, {X: 30, Y: 40}},
				Pointer:    core.Point{X: 99, Y: 99},
				HasPointer: true,
			},
			expected: core.Point{X: 10, Y: 20},
		},
		{
			name:     "pointer without touches",
			ev:       PointerEvent(123, 45),
			expected: core.Point{X: 123, Y: 45},
		},
		{
			name:     "pointer at origin is still a pointer",
			ev:       PointerEvent(0, 0),
			expected: core.Point{X: 0, Y: 0},
		},
		{
			name:     "no coordinates falls back to center",
			ev:       KeyEvent(),
			expected: core.Point{X: 400, Y: 300},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePoint(tt.ev, 800, 600)
			if got != tt.expected {
				t.Errorf("ResolvePoint() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestResolvePointIsPure(t *testing.T) {
	ev := Event{Touches: []core.Point{{X: 1, Y: 2}}}
	first := ResolvePoint(ev, 100, 100)
	second := ResolvePoint(ev, 100, 100)

	if first != second {
		t.Error("ResolvePoint should be deterministic")
	}
	if len(ev.Touches) != 1 || ev.Touches[0] != (core.Point{X: 1, Y: 2}) {
		t.Error("ResolvePoint must not modify the event")
	}
}

func TestSourceString(t *testing.T) {
	if SourceKey.String() != "key" || SourcePointer.String() != "pointer" || SourceTouch.String() != "touch" {
		t.Error("unexpected source names")
	}
}
