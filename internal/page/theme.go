package page

import (
	"fmt"

	"github.com/vovakirdan/tui-glimmer/internal/config"
	"github.com/vovakirdan/tui-glimmer/internal/core"
)

// Theme is the parsed color set of the page.
type Theme struct {
	Background core.Color
	Title      core.Color
	Subtitle   core.Color
	Hint       core.Color
	Accent     core.Color
	Border     core.Color
	Particle   core.Color
}

// ParseTheme resolves every configured color.
func ParseTheme(cfg config.Config) (Theme, error) {
	var th Theme
	fields := []struct {
		name string
		spec string
		dst  *core.Color
	}{
		{"theme.background", cfg.Theme.Background, &th.Background},
		{"theme.title", cfg.Theme.Title, &th.Title},
		{"theme.subtitle", cfg.Theme.Subtitle, &th.Subtitle},
		{"theme.hint", cfg.Theme.Hint, &th.Hint},
		{"theme.accent", cfg.Theme.Accent, &th.Accent},
		{"theme.border", cfg.Theme.Border, &th.Border},
		{"particles.color", cfg.Particles.Color, &th.Particle},
	}

	for _, f := range fields {
		c, err := core.ParseColor(f.spec)
		if err != nil {
			return Theme{}, fmt.Errorf("page: %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return th, nil
}
