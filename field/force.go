package field

import (
	"math"

	"github.com/lixenwraith/driftfield/vmath"
)

// Variant selects the force shape applied around the pointer
type Variant uint8

const (
	// VariantPull attracts particles directly toward the pointer
	VariantPull Variant = iota
	// VariantSwirl rotates the pull 90 degrees for orbital motion, blended
	// with a small direct component so orbits settle instead of circling
	// forever
	VariantSwirl
)

// Force field defaults, in buffer coordinates (columns) and per-frame units
const (
	DefaultForceRadius = 16.0
	DefaultStrength    = 2.0
	DefaultSwirlMix    = 0.3
	DefaultSmoothing   = 0.2
	DefaultDamping     = 0.88
	DefaultOffsetDecay = 0.92
)

// ForceField computes pointer-driven displacement and integrates it into
// per-particle velocity and offset. It is the sole mutator of
// Particle.Velocity and Particle.ForceOffset.
type ForceField struct {
	Variant     Variant
	Radius      float64 // Interaction radius; zero force outside
	Strength    float64 // Force magnitude at the pointer position
	SwirlMix    float64 // Direct-pull fraction blended into swirl
	Smoothing   float64 // Velocity lerp factor toward instantaneous force
	Damping     float64 // Per-frame velocity decay
	OffsetDecay float64 // Per-frame pull of the offset back toward rest
}

// NewForceField returns a field with default tuning for the given variant
func NewForceField(v Variant) ForceField {
	return ForceField{
		Variant:     v,
		Radius:      DefaultForceRadius,
		Strength:    DefaultStrength,
		SwirlMix:    DefaultSwirlMix,
		Smoothing:   DefaultSmoothing,
		Damping:     DefaultDamping,
		OffsetDecay: DefaultOffsetDecay,
	}
}

// ForceAt returns the instantaneous force on a particle at pos for the
// smoothed pointer position. burst scales strength (1.0 = no burst).
// Falloff is linear: full strength at the pointer, zero at Radius.
func (f *ForceField) ForceAt(pos, pointer vmath.Vec2, burst float64) vmath.Vec2 {
	// Axis-aligned rejection first: the common far-away case exits without
	// the squared-distance math, and no sqrt runs until a hit is certain
	dx := pointer.X - pos.X
	dy := pointer.Y - pos.Y
	if dx > f.Radius || dx < -f.Radius || dy > f.Radius || dy < -f.Radius {
		return vmath.Vec2{}
	}
	distSq := dx*dx + dy*dy
	if distSq >= f.Radius*f.Radius {
		return vmath.Vec2{}
	}

	dist := math.Sqrt(distSq)
	mag := f.Strength * burst * (1.0 - dist/f.Radius)

	var dir vmath.Vec2
	if dist > 1e-9 {
		inv := 1.0 / dist
		dir = vmath.Vec2{X: dx * inv, Y: dy * inv}
	} else {
		// Direction is degenerate at the pointer's exact position; pin it
		// to +X so the magnitude contract still holds
		dir = vmath.Vec2{X: 1, Y: 0}
	}

	if f.Variant == VariantSwirl {
		swirl := vmath.V2Perp(dir)
		dir = vmath.V2Add(
			vmath.V2Scale(swirl, 1.0-f.SwirlMix),
			vmath.V2Scale(dir, f.SwirlMix),
		)
	}

	return vmath.V2Scale(dir, mag)
}

// Integrate advances the particle's persistent state by one frame under the
// given instantaneous force. Two stages produce inertia rather than
// snap-to-pointer motion: velocity eases toward the force, decays by
// damping, then the decayed velocity accumulates into an offset that
// itself relaxes back toward rest.
func (f *ForceField) Integrate(p *Particle, force vmath.Vec2) {
	p.Velocity.X = vmath.Lerp(p.Velocity.X, force.X, f.Smoothing) * f.Damping
	p.Velocity.Y = vmath.Lerp(p.Velocity.Y, force.Y, f.Smoothing) * f.Damping
	p.ForceOffset.X = (p.ForceOffset.X + p.Velocity.X) * f.OffsetDecay
	p.ForceOffset.Y = (p.ForceOffset.Y + p.Velocity.Y) * f.OffsetDecay
}

// Apply runs the full per-frame force step against the particle's current
// screen position (pre-offset projection plus the persisting offset)
func (f *ForceField) Apply(p *Particle, base, pointer vmath.Vec2, burst float64) {
	pos := vmath.V2Add(base, p.ForceOffset)
	f.Integrate(p, f.ForceAt(pos, pointer, burst))
}
