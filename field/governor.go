package field

// Capacity tiers. The constrained tier keeps worst-case per-frame work
// (force + projection per particle, line cells per connection) inside what
// slow terminals sustain at the tick rate.
const (
	particlesNormal      = 220
	particlesConstrained = 90

	budgetNormal      = 120
	budgetConstrained = 40

	// Viewports smaller than this are treated as constrained regardless
	// of the caller-supplied flag
	minCapableWidth  = 60
	minCapableHeight = 20
)

// Profile fixes the session's capacity parameters: decided once before the
// cloud is generated, never re-evaluated mid-session.
type Profile struct {
	ParticleCount    int
	ConnectionBudget int

	// SubCell enables half-block rendering (2x vertical resolution), the
	// terminal analog of device-pixel-ratio upscaling. Skipped on
	// constrained profiles to bound fill cost.
	SubCell bool
}

// Decide evaluates device signals into a Profile. constrained is
// caller-classified (input modality, known-slow host); width/height is the
// terminal size; override > 0 forces the particle count.
func Decide(constrained bool, width, height, override int) Profile {
	p := Profile{
		ParticleCount:    particlesNormal,
		ConnectionBudget: budgetNormal,
		SubCell:          true,
	}

	if constrained || width < minCapableWidth || height < minCapableHeight {
		p.ParticleCount = particlesConstrained
		p.ConnectionBudget = budgetConstrained
		p.SubCell = false
	}

	if override > 0 {
		p.ParticleCount = override
	}
	return p
}
