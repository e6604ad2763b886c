package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a cell color as a "#rrggbb" hex string.
// The empty Color means the terminal default.
type Color string

// ColorDefault leaves the cell in the terminal's default color.
const ColorDefault Color = ""

// namedColors are the color names accepted in addition to hex codes.
var namedColors = map[string]Color{
	"white":  "#ffffff",
	"black":  "#000000",
	"gold":   "#ffd700",
	"pink":   "#ff69b4",
	"rose":   "#ff7eb6",
	"red":    "#ff4d4d",
	"orange": "#ffa94d",
	"yellow": "#ffe066",
	"green":  "#69db7c",
	"cyan":   "#66d9e8",
	"blue":   "#74c0fc",
	"violet": "#b197fc",
	"gray":   "#adb5bd",
}

// ParseColor accepts a hex code ("#ff69b4", "#f6b") or one of the named colors.
func ParseColor(spec string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return ColorDefault, fmt.Errorf("core: empty color")
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return ColorDefault, fmt.Errorf("core: invalid color %q: %w", spec, err)
	}
	return Color(c.Hex()), nil
}

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// Fade returns c blended toward bg by the given opacity.
// Opacity 1 yields c, 0 yields bg. A default background is treated as black.
func (c Color) Fade(bg Color, opacity float64) Color {
	if c.IsDefault() {
		return c
	}
	fg, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	back := colorful.Color{}
	if !bg.IsDefault() {
		if parsed, bgErr := colorful.Hex(string(bg)); bgErr == nil {
			back = parsed
		}
	}
	opacity = ClampF(opacity, 0, 1)
	return Color(back.BlendRgb(fg, opacity).Clamped().Hex())
}
