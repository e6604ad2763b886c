package field

import (
	"math/rand"

	"github.com/vovakirdan/tui-glimmer/internal/core"
)

// Burst particle shape.
const (
	BurstMinSize  = 1.0
	BurstMaxSize  = 4.0
	BurstSpread   = 1.0 // Velocity components fall in [-spread, spread]
	DefaultDecay  = 0.02
	ambientMinOpa = 0.3
	ambientMaxOpa = 0.8
)

// Surface is the frame the field draws onto.
type Surface interface {
	FillCircle(x, y, radius, opacity float64, color core.Color)
}

// Params holds the particle settings taken from configuration.
type Params struct {
	MaxSpeed float64    // Ambient speed components fall in [-MaxSpeed/2, MaxSpeed/2]
	Size     float64    // Ambient radius
	Decay    float64    // Per-frame life loss of burst particles
	Color    core.Color // Fill color for every particle
}

// Field owns the live particle collection, ambient and burst alike, in one
// ordered slice.
type Field struct {
	particles []Particle
	rng       *rand.Rand
	width     float64
	height    float64
	params    Params
}

// New creates an empty field covering width × height virtual pixels.
func New(width, height float64, params Params, seed int64) *Field {
	if params.Decay <= 0 {
		params.Decay = DefaultDecay
	}
	return &Field{
		rng:    rand.New(rand.NewSource(seed)),
		width:  width,
		height: height,
		params: params,
	}
}

// Initialize replaces the whole collection with count fresh ambient
// particles. Bursts in flight are discarded.
func (f *Field) Initialize(count int) {
	f.particles = make([]Particle, 0, count)
	f.AddParticles(count)
}

// AddParticles appends count ambient particles to the live field.
func (f *Field) AddParticles(count int) {
	half := f.params.MaxSpeed / 2
	for i := 0; i < count; i++ {
		f.particles = append(f.particles, Particle{
			X:       f.rng.Float64() * f.width,
			Y:       f.rng.Float64() * f.height,
			SpeedX:  f.uniform(-half, half),
			SpeedY:  f.uniform(-half, half),
			Size:    f.params.Size,
			Opacity: f.uniform(ambientMinOpa, ambientMaxOpa),
			Life:    1,
		})
	}
}

// Burst appends count decaying particles starting at (x, y).
func (f *Field) Burst(x, y float64, count int) {
	for i := 0; i < count; i++ {
		f.particles = append(f.particles, Particle{
			X:       x,
			Y:       y,
			SpeedX:  f.uniform(-BurstSpread, BurstSpread),
			SpeedY:  f.uniform(-BurstSpread, BurstSpread),
			Size:    f.uniform(BurstMinSize, BurstMaxSize),
			Opacity: 1,
			Life:    1,
			Decay:   f.params.Decay,
		})
	}
}

// AdvanceAndRender runs one frame: every particle moves, decays and wraps,
// is drawn onto dst, and expired bursts are dropped in the same pass.
func (f *Field) AdvanceAndRender(dst Surface) {
	kept := f.particles[:0]
	for i := range f.particles {
		p := &f.particles[i]
		Advance(p, f.width, f.height)

		if IsExpired(*p) {
			// Fully transparent; drawing it would only paint background.
			continue
		}
		if dst != nil {
			dst.FillCircle(p.X, p.Y, p.Size, p.Opacity, f.params.Color)
		}
		kept = append(kept, *p)
	}

	// Release references held by the tail of the old slice.
	clear(f.particles[len(kept):])
	f.particles = kept
}

// Resize changes the wrap bounds. Existing particles are left in place;
// callers regenerate the ambient set afterwards.
func (f *Field) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// Size returns the field dimensions in virtual pixels.
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// SetColor changes the fill color used for all subsequent draws.
func (f *Field) SetColor(c core.Color) {
	f.params.Color = c
}

// Color returns the current fill color.
func (f *Field) Color() core.Color {
	return f.params.Color
}

// Len returns the number of live particles.
func (f *Field) Len() int {
	return len(f.particles)
}

// Counts splits the live particles into ambient and burst.
func (f *Field) Counts() (ambient, burst int) {
	for _, p := range f.particles {
		if p.Decaying() {
			burst++
		} else {
			ambient++
		}
	}
	return ambient, burst
}

// Particles returns a copy of the live particles.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// uniform draws from [lo, hi).
func (f *Field) uniform(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}
