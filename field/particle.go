package field

import (
	"github.com/lixenwraith/driftfield/vmath"
)

// Particle is the single record shape of the simulation. There is no class
// hierarchy; ownership is split per field group instead:
//   - Rest, Radius, ColorIdx, IsAccent are assigned by GenerateCloud and
//     never mutated afterwards.
//   - Velocity and ForceOffset are owned by ForceField and are the only
//     per-particle state carried frame to frame.
//   - Screen, Scale, Visible are derived by the simulation loop every frame
//     before they are read; stale values from a prior frame are never used.
type Particle struct {
	// Rest is the fixed spherical-distribution coordinate in field space
	Rest vmath.Vec3

	// ForceOffset is the accumulated pointer-driven displacement in screen
	// coordinates; Velocity is its rate of change
	ForceOffset vmath.Vec2
	Velocity    vmath.Vec2

	Radius   float64 // Draw weight, immutable
	ColorIdx uint8   // Base palette tone, immutable
	IsAccent bool    // Preferred connection source, ~15% of particles

	// Derived each frame, not persisted
	Screen  vmath.Vec2
	Scale   float64
	Visible bool
}
