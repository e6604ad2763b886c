// Package presets registers the built-in page variants.
package presets

import (
	"github.com/vovakirdan/tui-glimmer/internal/config"
	"github.com/vovakirdan/tui-glimmer/internal/registry"
)

// DefaultID is the preset used when none is named.
const DefaultID = "classic"

func init() {
	registry.Register(registry.Preset{
		ID:          "classic",
		Title:       "Classic",
		Description: "Glow burst on reveal, no ripple",
		Apply: func(cfg *config.Config) {
			cfg.Particles.GlowOnReveal = true
			cfg.Animation.Ripple = false
		},
	})

	registry.Register(registry.Preset{
		ID:          "ripple",
		Title:       "Ripple",
		Description: "Glow burst on reveal plus a ripple ring on every press",
		Apply: func(cfg *config.Config) {
			cfg.Particles.GlowOnReveal = true
			cfg.Animation.Ripple = true
		},
	})

	registry.Register(registry.Preset{
		ID:          "calm",
		Title:       "Calm",
		Description: "Slower, sparser field; text appears without a burst",
		Apply: func(cfg *config.Config) {
			cfg.Particles.GlowOnReveal = false
			cfg.Particles.MaxSpeed /= 2
			cfg.Particles.Count = cfg.Particles.Count * 3 / 5
			cfg.Animation.Ripple = false
		},
	})
}
