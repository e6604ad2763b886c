package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse(defaultYAML) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Embedded defaults drifted from DefaultConfig():\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
particles:
  count: 120
animation:
  reveal_delay: 250ms
messages:
  - title: "Only one"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Particles.Count != 120 {
		t.Errorf("Count = %d, expected 120", cfg.Particles.Count)
	}
	if cfg.Animation.RevealDelay != 250*time.Millisecond {
		t.Errorf("RevealDelay = %v, expected 250ms", cfg.Animation.RevealDelay)
	}
	if len(cfg.Messages) != 1 || cfg.Messages[0].Title != "Only one" {
		t.Errorf("Messages should be replaced, got %+v", cfg.Messages)
	}

	// Untouched fields keep their defaults.
	if cfg.Particles.Size != DefaultConfig().Particles.Size {
		t.Errorf("Size = %v, expected default", cfg.Particles.Size)
	}
	if cfg.Animation.FadeDelay != 300*time.Millisecond {
		t.Errorf("FadeDelay = %v, expected default 300ms", cfg.Animation.FadeDelay)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"no messages", func(c *Config) { c.Messages = nil }, "messages"},
		{"negative count", func(c *Config) { c.Particles.Count = -1 }, "particles.count"},
		{"zero size", func(c *Config) { c.Particles.Size = 0 }, "particles.size"},
		{"zero decay", func(c *Config) { c.Animation.BurstDecay = 0 }, "burst_decay"},
		{"decay above one", func(c *Config) { c.Animation.BurstDecay = 1.5 }, "burst_decay"},
		{"negative delay", func(c *Config) { c.Animation.RevealDelay = -time.Second }, "durations"},
		{"zero cell", func(c *Config) { c.Layout.CellWidth = 0 }, "cell size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate should fail")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Error %q should mention %q", err, tt.field)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("particles:\n  color: gold\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Particles.Color != "gold" {
		t.Errorf("Color = %q, expected gold", cfg.Particles.Color)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("particles: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load of malformed YAML should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("messages: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load should validate the decoded config")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "reveal_delay: 100ms") {
		t.Errorf("Durations should encode as strings:\n%s", data)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse of marshaled config failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("Marshaled config should decode back to the same value")
	}
}
