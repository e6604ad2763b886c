// Package field implements the particle field: a persistent ambient set
// plus short-lived bursts, advanced and drawn once per frame.
package field

import "math"

// expiryEpsilon absorbs float drift from repeated decay subtraction, so a
// particle with decay 0.02 expires on exactly its 50th frame.
const expiryEpsilon = 1e-9

// Particle is one point of the field in virtual pixel space.
// Ambient particles have Decay == 0 and never expire.
type Particle struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Size           float64 // Radius
	Opacity        float64 // 0..1
	Life           float64 // 1..0, meaningful only when Decay > 0
	Decay          float64 // Life lost per frame
}

// Decaying reports whether the particle belongs to a burst.
func (p Particle) Decaying() bool {
	return p.Decay > 0
}

// Advance moves the particle one frame, decays burst particles and wraps
// the position into [0, w) × [0, h).
func Advance(p *Particle, w, h float64) {
	p.X += p.SpeedX
	p.Y += p.SpeedY

	if p.Decaying() {
		p.Life -= p.Decay
		p.Opacity = max(p.Life, 0)
	}

	p.X = wrap(p.X, w)
	p.Y = wrap(p.Y, h)
}

// IsExpired reports whether a burst particle has used up its life.
func IsExpired(p Particle) bool {
	return p.Decaying() && p.Life <= expiryEpsilon
}

// wrap maps v onto the torus [0, size): leaving one edge re-enters at the
// opposite one. Overshoot is dropped rather than carried over.
func wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	if v >= size {
		return 0
	}
	if v < 0 {
		// The upper bound itself is outside [0, size); land just inside it.
		return math.Nextafter(size, 0)
	}
	return v
}
