// Package registry provides a global registry of page presets.
// Presets register themselves in init() functions, allowing the CLI
// to discover and apply them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-glimmer/internal/config"
)

// Preset is a named variant of the page.
type Preset struct {
	// ID is the unique identifier used on the command line (e.g., "ripple").
	ID string

	// Title is a human-readable name for display.
	Title string

	// Description explains what the variant changes.
	Description string

	// Apply adjusts a loaded configuration. May be nil for no changes.
	Apply func(cfg *config.Config)
}

// PresetInfo contains metadata about a registered preset.
type PresetInfo struct {
	ID          string
	Title       string
	Description string
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Typically called from an init() function.
// Panics if a preset with the same ID is already registered.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if p.ID == "" {
		panic("registry: preset without ID")
	}
	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", p.ID))
	}
	presets[p.ID] = p
}

// List returns information about all registered presets, sorted by ID.
func List() []PresetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PresetInfo, 0, len(presets))
	for _, p := range presets {
		result = append(result, PresetInfo{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Apply applies the preset with the given ID to cfg.
// Returns an error if the preset ID is not registered.
func Apply(id string, cfg *config.Config) error {
	mu.RLock()
	p, ok := presets[id]
	mu.RUnlock()

	if !ok {
		return fmt.Errorf("registry: unknown preset %q", id)
	}
	if p.Apply != nil {
		p.Apply(cfg)
	}
	return nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}
