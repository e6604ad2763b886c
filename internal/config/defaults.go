package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/glimmer.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in page configuration.
// It mirrors defaults/glimmer.yaml and backs it up if the embed fails to parse.
func DefaultConfig() Config {
	return Config{
		Page: PageConfig{
			Header: "glimmer",
			Hint:   "Tap anywhere or press Space",
		},
		Particles: ParticleConfig{
			Count:        50,
			MaxSpeed:     1.0,
			Size:         2,
			Color:        "#ffffff",
			GlowOnReveal: true,
		},
		Animation: AnimationConfig{
			RevealDelay:    100 * time.Millisecond,
			FadeDelay:      300 * time.Millisecond,
			BurstSize:      30,
			CycleBurstSize: 15,
			BurstDecay:     0.02,
			PulseDuration:  200 * time.Millisecond,
			Ripple:         false,
			RippleDuration: 800 * time.Millisecond,
		},
		Theme: ThemeConfig{
			Background: "#0b0b1a",
			Title:      "#ffffff",
			Subtitle:   "#c9c9e8",
			Hint:       "#8080a0",
			Accent:     "#ff7eb6",
			Border:     "#2a2a45",
		},
		Layout: LayoutConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Messages: []Message{
			{Title: "Hello there", Subtitle: "You found the hidden message"},
			{Title: "Still here?", Subtitle: "Every press brings a new line"},
			{Title: "Have a bright day", Subtitle: "And come back soon"},
		},
	}
}
