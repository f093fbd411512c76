package field

import (
	"math"
	"testing"

	"github.com/lixenwraith/driftfield/vmath"
)

func TestGenerateCloudInsideSphere(t *testing.T) {
	rng := vmath.NewFastRand(42)
	parts := GenerateCloud(5000, 4, rng)
	if len(parts) != 5000 {
		t.Fatalf("got %d particles, want 5000", len(parts))
	}
	for i := range parts {
		if r := vmath.V3Mag(parts[i].Rest); r > FieldRadius {
			t.Fatalf("particle %d at radius %v, outside FieldRadius", i, r)
		}
	}
}

func TestGenerateCloudVolumeUniform(t *testing.T) {
	// Volume-uniform sampling makes r^3 uniform in [0, 1), so its mean
	// should sit near 0.5. Surface-biased or center-clustered sampling
	// lands far from it.
	rng := vmath.NewFastRand(42)
	parts := GenerateCloud(20000, 4, rng)

	sum := 0.0
	for i := range parts {
		r := vmath.V3Mag(parts[i].Rest) / FieldRadius
		sum += math.Pow(r, 3)
	}
	mean := sum / float64(len(parts))
	if mean < 0.47 || mean > 0.53 {
		t.Errorf("mean of r^3 = %v, want ~0.5 for volume-uniform sampling", mean)
	}
}

func TestGenerateCloudAccentRate(t *testing.T) {
	rng := vmath.NewFastRand(7)
	parts := GenerateCloud(20000, 4, rng)
	accents := 0
	for i := range parts {
		if parts[i].IsAccent {
			accents++
		}
	}
	rate := float64(accents) / float64(len(parts))
	if rate < 0.12 || rate > 0.18 {
		t.Errorf("accent rate = %v, want ~0.15", rate)
	}
}

func TestGenerateCloudTonesBound(t *testing.T) {
	rng := vmath.NewFastRand(3)
	parts := GenerateCloud(1000, 4, rng)
	for i := range parts {
		if parts[i].ColorIdx >= 4 {
			t.Fatalf("particle %d ColorIdx = %d, want < 4", i, parts[i].ColorIdx)
		}
	}
}

func TestGenerateCloudDeterministic(t *testing.T) {
	a := GenerateCloud(100, 4, vmath.NewFastRand(555))
	b := GenerateCloud(100, 4, vmath.NewFastRand(555))
	for i := range a {
		if a[i].Rest != b[i].Rest || a[i].Radius != b[i].Radius ||
			a[i].ColorIdx != b[i].ColorIdx || a[i].IsAccent != b[i].IsAccent {
			t.Fatalf("particle %d differs between identically seeded clouds", i)
		}
	}
}

func TestGenerateCloudDegenerateArgs(t *testing.T) {
	rng := vmath.NewFastRand(1)
	if parts := GenerateCloud(-5, 4, rng); len(parts) != 0 {
		t.Errorf("negative count produced %d particles, want 0", len(parts))
	}
	parts := GenerateCloud(10, 0, rng)
	for i := range parts {
		if parts[i].ColorIdx != 0 {
			t.Errorf("tones clamp failed: ColorIdx = %d", parts[i].ColorIdx)
		}
	}
}
