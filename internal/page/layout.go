package page

import "github.com/vovakirdan/tui-glimmer/internal/core"

// Layout holds the screen regions of the page elements, in cells.
type Layout struct {
	Container core.Rect
	Title     core.Rect
	Subtitle  core.Rect
	Hint      core.Rect
}

// ComputeLayout places the elements on a cols × rows screen: title and
// subtitle around the vertical middle, the hint near the bottom edge.
func ComputeLayout(cols, rows int) Layout {
	container := core.NewRect(0, 0, cols, rows)
	inner := container.Inset(1)

	mid := rows / 2
	line := func(y int) core.Rect {
		if inner.Empty() {
			return core.NewRect(0, core.Clamp(y, 0, core.Max(rows-1, 0)), cols, 1)
		}
		return core.NewRect(inner.X, core.Clamp(y, inner.Y, inner.Bottom()-1), inner.W, 1)
	}

	return Layout{
		Container: container,
		Title:     line(mid - 1),
		Subtitle:  line(mid + 1),
		Hint:      line(rows - 3),
	}
}
