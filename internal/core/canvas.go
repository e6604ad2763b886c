package core

import "math"

// Particle glyphs, from smallest to largest radius.
const (
	GlyphDot    = '·'
	GlyphBullet = '•'
	GlyphDisc   = '●'
	GlyphRing   = '○'
)

// Canvas draws shapes given in virtual pixel space onto a Screen.
// Each screen cell covers cellW × cellH virtual pixels.
type Canvas struct {
	screen     *Screen
	cellW      float64
	cellH      float64
	background Color
}

// NewCanvas wraps a screen. Non-positive cell sizes fall back to 1.
func NewCanvas(screen *Screen, cellW, cellH int, background Color) *Canvas {
	return &Canvas{
		screen:     screen,
		cellW:      float64(Max(cellW, 1)),
		cellH:      float64(Max(cellH, 1)),
		background: background,
	}
}

// Size returns the canvas dimensions in virtual pixels.
func (c *Canvas) Size() (w, h float64) {
	return float64(c.screen.Width()) * c.cellW, float64(c.screen.Height()) * c.cellH
}

// CellCenter converts a screen cell to the virtual pixel at its center.
func (c *Canvas) CellCenter(col, row int) Point {
	return Point{
		X: (float64(col) + 0.5) * c.cellW,
		Y: (float64(row) + 0.5) * c.cellH,
	}
}

// CellAt converts a virtual pixel position to the screen cell containing it.
func (c *Canvas) CellAt(x, y float64) (col, row int) {
	return int(math.Floor(x / c.cellW)), int(math.Floor(y / c.cellH))
}

// FillCircle draws a filled circle. Circles smaller than a cell become a
// single glyph sized by radius; larger ones cover every cell whose center
// lies inside the circle.
func (c *Canvas) FillCircle(x, y, radius, opacity float64, color Color) {
	fg := color.Fade(c.background, opacity)

	if radius*2 <= c.cellW {
		col, row := c.CellAt(x, y)
		c.screen.SetCell(col, row, Cell{Rune: glyphFor(radius), Fg: fg})
		return
	}

	minCol, minRow := c.CellAt(x-radius, y-radius)
	maxCol, maxRow := c.CellAt(x+radius, y+radius)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			p := c.CellCenter(col, row)
			if math.Hypot(p.X-x, p.Y-y) <= radius {
				c.screen.SetCell(col, row, Cell{Rune: GlyphDisc, Fg: fg})
			}
		}
	}
}

// StrokeCircle draws the outline of a circle using ring glyphs.
func (c *Canvas) StrokeCircle(x, y, radius, opacity float64, color Color) {
	if radius <= 0 {
		return
	}
	fg := color.Fade(c.background, opacity)

	// Enough samples that neighbouring points land at most one cell apart.
	steps := int(math.Ceil(2 * math.Pi * radius / math.Min(c.cellW, c.cellH)))
	steps = Max(steps, 8)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		col, row := c.CellAt(x+radius*math.Cos(a), y+radius*math.Sin(a))
		c.screen.SetCell(col, row, Cell{Rune: GlyphRing, Fg: fg})
	}
}

// glyphFor picks the glyph that best approximates a sub-cell circle.
func glyphFor(radius float64) rune {
	switch {
	case radius < 1.5:
		return GlyphDot
	case radius < 2.5:
		return GlyphBullet
	default:
		return GlyphDisc
	}
}
