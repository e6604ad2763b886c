package registry

import (
	"testing"

	"github.com/vovakirdan/tui-glimmer/internal/config"
)

func TestRegisterAndApply(t *testing.T) {
	Register(Preset{
		ID:    "test-gold",
		Title: "Gold",
		Apply: func(cfg *config.Config) {
			cfg.Particles.Color = "gold"
		},
	})

	if !Exists("test-gold") {
		t.Fatal("registered preset should exist")
	}

	cfg := config.DefaultConfig()
	if err := Apply("test-gold", &cfg); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if cfg.Particles.Color != "gold" {
		t.Errorf("Color = %q, expected gold", cfg.Particles.Color)
	}
}

func TestApplyNilFunc(t *testing.T) {
	Register(Preset{ID: "test-plain", Title: "Plain"})

	cfg := config.DefaultConfig()
	if err := Apply("test-plain", &cfg); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if cfg.Particles.Color != config.DefaultConfig().Particles.Color {
		t.Error("preset without Apply should leave config unchanged")
	}
}

func TestApplyUnknown(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := Apply("does-not-exist", &cfg); err == nil {
		t.Error("Apply of an unknown preset should fail")
	}
	if Exists("does-not-exist") {
		t.Error("unknown preset should not exist")
	}
}

func TestListSorted(t *testing.T) {
	Register(Preset{ID: "test-z", Title: "Z"})
	Register(Preset{ID: "test-a", Title: "A"})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Preset{ID: "test-dup"})

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register(Preset{ID: "test-dup"})
}
