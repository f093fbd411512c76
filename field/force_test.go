package field

import (
	"math"
	"testing"

	"github.com/lixenwraith/driftfield/vmath"
)

func TestForceZeroOutsideRadius(t *testing.T) {
	f := NewForceField(VariantPull)
	pointer := vmath.Vec2{X: 50, Y: 50}

	cases := []vmath.Vec2{
		{X: 50 + f.Radius, Y: 50},            // Exactly at the boundary
		{X: 50 + f.Radius + 0.01, Y: 50},     // Just outside
		{X: 50 - 2*f.Radius, Y: 50},          // Far left
		{X: 50, Y: 50 + f.Radius + 100},      // Far below
		{X: 50 + f.Radius, Y: 50 + f.Radius}, // Corner of the AABB, outside the circle
	}
	for _, pos := range cases {
		if got := f.ForceAt(pos, pointer, 1); got != (vmath.Vec2{}) {
			t.Errorf("ForceAt(%v) = %v, want zero", pos, got)
		}
	}
}

func TestForceFullStrengthAtPointer(t *testing.T) {
	f := NewForceField(VariantPull)
	pointer := vmath.Vec2{X: 50, Y: 50}
	got := f.ForceAt(pointer, pointer, 1)
	if mag := vmath.V2Mag(got); math.Abs(mag-f.Strength) > 1e-9 {
		t.Errorf("force magnitude at pointer = %v, want %v", mag, f.Strength)
	}
}

func TestForceLinearFalloff(t *testing.T) {
	f := NewForceField(VariantPull)
	pointer := vmath.Vec2{X: 50, Y: 50}
	pos := vmath.Vec2{X: 50 - f.Radius/2, Y: 50}

	got := f.ForceAt(pos, pointer, 1)
	wantMag := f.Strength * 0.5
	if mag := vmath.V2Mag(got); math.Abs(mag-wantMag) > 1e-9 {
		t.Errorf("force at half radius = %v, want %v", mag, wantMag)
	}

	// Pull variant points toward the pointer
	if got.X <= 0 || math.Abs(got.Y) > 1e-9 {
		t.Errorf("pull direction = %v, want +X toward pointer", got)
	}
}

func TestForceBurstScalesStrength(t *testing.T) {
	f := NewForceField(VariantPull)
	pointer := vmath.Vec2{X: 50, Y: 50}
	base := vmath.V2Mag(f.ForceAt(pointer, pointer, 1))
	boosted := vmath.V2Mag(f.ForceAt(pointer, pointer, 3))
	if math.Abs(boosted-3*base) > 1e-9 {
		t.Errorf("burst 3x force = %v, want %v", boosted, 3*base)
	}
}

func TestSwirlDominantlyPerpendicular(t *testing.T) {
	f := NewForceField(VariantSwirl)
	pointer := vmath.Vec2{X: 50, Y: 50}
	pos := vmath.Vec2{X: 42, Y: 50}

	force := f.ForceAt(pos, pointer, 1)
	pull := vmath.V2Normalize(vmath.V2Sub(pointer, pos))

	along := vmath.V2Dot(force, pull)
	across := vmath.V2Dot(force, vmath.V2Perp(pull))

	if along <= 0 {
		t.Errorf("swirl lost its inward component: along = %v", along)
	}
	if math.Abs(across) <= math.Abs(along) {
		t.Errorf("swirl not dominantly tangential: across %v vs along %v", across, along)
	}
}

func TestIntegrateDampsToRest(t *testing.T) {
	f := NewForceField(VariantPull)
	p := Particle{Velocity: vmath.Vec2{X: 5, Y: -3}, ForceOffset: vmath.Vec2{X: 10, Y: 10}}

	initial := vmath.V2Mag(p.Velocity)
	for i := 0; i < 60; i++ {
		f.Integrate(&p, vmath.Vec2{})
	}

	if v := vmath.V2Mag(p.Velocity); v > initial*0.01 {
		t.Errorf("velocity after 60 damped frames = %v, want under 1%% of %v", v, initial)
	}
	if off := vmath.V2Mag(p.ForceOffset); off > 0.5 {
		t.Errorf("offset after 60 decayed frames = %v, want near zero", off)
	}
}

func TestIntegrateAccumulatesOffset(t *testing.T) {
	f := NewForceField(VariantPull)
	var p Particle

	f.Integrate(&p, vmath.Vec2{X: 1, Y: 0})
	if p.Velocity.X <= 0 {
		t.Errorf("velocity did not ease toward force: %v", p.Velocity)
	}
	if p.ForceOffset.X <= 0 {
		t.Errorf("offset did not accumulate velocity: %v", p.ForceOffset)
	}
	// Constant force keeps adding displacement
	before := p.ForceOffset.X
	f.Integrate(&p, vmath.Vec2{X: 1, Y: 0})
	if p.ForceOffset.X <= before {
		t.Errorf("offset did not grow under sustained force: %v -> %v", before, p.ForceOffset.X)
	}
}

func TestApplyUsesOffsetPosition(t *testing.T) {
	f := NewForceField(VariantPull)
	pointer := vmath.Vec2{X: 50, Y: 50}

	// Base position is outside the radius, but the persisting offset has
	// carried the particle inside it; Apply must see the offset position
	base := vmath.Vec2{X: 50 - f.Radius - 5, Y: 50}
	p := Particle{ForceOffset: vmath.Vec2{X: 10, Y: 0}}

	f.Apply(&p, base, pointer, 1)
	if p.Velocity == (vmath.Vec2{}) {
		t.Error("Apply ignored the particle's force offset position")
	}
}
