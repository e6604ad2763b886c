// Package config provides YAML-based page configuration loading and
// validation for glimmer.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for the page.
type Config struct {
	Page      PageConfig      `yaml:"page"`
	Particles ParticleConfig  `yaml:"particles"`
	Animation AnimationConfig `yaml:"animation"`
	Theme     ThemeConfig     `yaml:"theme"`
	Layout    LayoutConfig    `yaml:"layout"`
	Messages  []Message       `yaml:"messages"`
}

// PageConfig holds the static page texts.
type PageConfig struct {
	Header string `yaml:"header"` // Window title requested from the host
	Hint   string `yaml:"hint"`   // Instruction shown until the first reveal
}

// ParticleConfig defines the ambient particle field.
type ParticleConfig struct {
	Count        int     `yaml:"count"`
	MaxSpeed     float64 `yaml:"max_speed"` // Ambient speed components fall in [-max/2, max/2]
	Size         float64 `yaml:"size"`      // Ambient particle radius in virtual pixels
	Color        string  `yaml:"color"`
	GlowOnReveal bool    `yaml:"glow_on_reveal"` // Burst at the interaction point on first reveal
}

// AnimationConfig defines reveal timing and burst sizes.
type AnimationConfig struct {
	RevealDelay    time.Duration `yaml:"reveal_delay"`
	FadeDelay      time.Duration `yaml:"fade_delay"`
	BurstSize      int           `yaml:"burst_size"`
	CycleBurstSize int           `yaml:"cycle_burst_size"`
	BurstDecay     float64       `yaml:"burst_decay"` // Life lost per frame by burst particles
	PulseDuration  time.Duration `yaml:"pulse_duration"`
	Ripple         bool          `yaml:"ripple"`
	RippleDuration time.Duration `yaml:"ripple_duration"`
}

// ThemeConfig defines the page colors as hex codes or color names.
type ThemeConfig struct {
	Background string `yaml:"background"`
	Title      string `yaml:"title"`
	Subtitle   string `yaml:"subtitle"`
	Hint       string `yaml:"hint"`
	Accent     string `yaml:"accent"` // Container border while the active pulse is on
	Border     string `yaml:"border"`
}

// LayoutConfig maps terminal cells onto the virtual pixel space.
type LayoutConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// Message is one title/subtitle pair of the cycling message list.
type Message struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// Validate reports every field that would leave the page unusable.
func (c Config) Validate() error {
	var errs []error

	if len(c.Messages) == 0 {
		errs = append(errs, errors.New("messages: at least one message is required"))
	}
	if c.Particles.Count < 0 {
		errs = append(errs, fmt.Errorf("particles.count: must not be negative, got %d", c.Particles.Count))
	}
	if c.Particles.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("particles.max_speed: must not be negative, got %v", c.Particles.MaxSpeed))
	}
	if c.Particles.Size <= 0 {
		errs = append(errs, fmt.Errorf("particles.size: must be positive, got %v", c.Particles.Size))
	}
	if c.Animation.BurstDecay <= 0 || c.Animation.BurstDecay > 1 {
		errs = append(errs, fmt.Errorf("animation.burst_decay: must be in (0, 1], got %v", c.Animation.BurstDecay))
	}
	if c.Animation.BurstSize < 0 || c.Animation.CycleBurstSize < 0 {
		errs = append(errs, errors.New("animation: burst sizes must not be negative"))
	}
	if c.Animation.RevealDelay < 0 || c.Animation.FadeDelay < 0 ||
		c.Animation.PulseDuration < 0 || c.Animation.RippleDuration < 0 {
		errs = append(errs, errors.New("animation: durations must not be negative"))
	}
	if c.Layout.CellWidth <= 0 || c.Layout.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("layout: cell size must be positive, got %dx%d",
			c.Layout.CellWidth, c.Layout.CellHeight))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
