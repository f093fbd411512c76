package field

import (
	"math"

	"github.com/lixenwraith/driftfield/vmath"
)

// FieldRadius is the rest-position sphere radius in field units
const FieldRadius = 1.0

// accentChance is the probability a particle is flagged as a connection
// source preference at generation time
const accentChance = 0.15

// Draw-weight jitter bounds
const (
	radiusMin = 0.6
	radiusMax = 1.4
)

// GenerateCloud produces n particles with rest positions distributed
// uniformly by volume inside a sphere of FieldRadius. tones is the number
// of base palette entries to draw ColorIdx from. Pure function of its
// inputs; called once per session, and again only on a debounced resize.
func GenerateCloud(n, tones int, rng *vmath.FastRand) []Particle {
	if n < 0 {
		n = 0
	}
	if tones < 1 {
		tones = 1
	}

	parts := make([]Particle, n)
	for i := range parts {
		// Volume-uniform radius needs the cube-root transform of a uniform
		// sample; a raw uniform radius clusters points at the center
		r := FieldRadius * math.Cbrt(rng.Float64())

		// Uniform direction on the sphere: z uniform in [-1, 1], azimuth
		// uniform in [0, 2pi)
		z := 2.0*rng.Float64() - 1.0
		theta := 2.0 * math.Pi * rng.Float64()
		ring := math.Sqrt(1.0 - z*z)

		parts[i] = Particle{
			Rest: vmath.Vec3{
				X: r * ring * math.Cos(theta),
				Y: r * ring * math.Sin(theta),
				Z: r * z,
			},
			Radius:   radiusMin + (radiusMax-radiusMin)*rng.Float64(),
			ColorIdx: uint8(rng.Intn(tones)),
			IsAccent: rng.Chance(accentChance),
		}
	}
	return parts
}
