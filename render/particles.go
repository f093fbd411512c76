package render

import (
	"github.com/lixenwraith/driftfield/field"
	"github.com/lixenwraith/driftfield/vmath"
)

const (
	// Fog: depth beyond fogStart collapses alpha toward zero so far
	// particles fade into the backdrop instead of popping at the wrap seam
	fogStart = 0.55 * field.FieldRadius

	// alphaFloor skips draws that would not be perceptible. A performance
	// cut only: the particle's persistent state is untouched.
	alphaFloor = 0.04

	// Perspective scale bounds for alpha normalization, matching the
	// focal/depth ranges of the projector
	scaleFar  = 0.7
	scaleNear = 1.5

	// Near particles splat one extra cell on each side
	splatScale = 1.15
	splatAlpha = 0.35
)

// ColorOf resolves a particle's draw color: accent particles use the
// configured accent slot, everything else its assigned base tone
func (pal Palette) ColorOf(p *field.Particle) RGB {
	if p.IsAccent {
		return pal[PaletteAccent]
	}
	return pal[p.ColorIdx%PaletteSize]
}

// particleAlpha attenuates by perspective scale (near = opaque, far =
// faint) and collapses beyond the fog depth
func particleAlpha(p *field.Particle, depth float64) float64 {
	t := vmath.Clamp01((p.Scale - scaleFar) / (scaleNear - scaleFar))
	alpha := (0.2 + 0.8*t) * (0.65 + 0.35*p.Radius)

	if depth > fogStart {
		fade := 1.0 - (depth-fogStart)/(field.FieldRadius-fogStart)
		alpha *= vmath.Clamp01(fade * fade)
	}
	return vmath.Clamp01(alpha)
}

// DrawParticle composites one visible particle into the buffer. depth is
// the particle's wrapped depth from the same frame's projection.
func DrawParticle(buf *Buffer, p *field.Particle, depth float64, pal Palette, subCell bool) {
	if !p.Visible {
		return
	}

	alpha := particleAlpha(p, depth)
	if alpha < alphaFloor {
		return
	}

	color := pal.ColorOf(p)
	x := int(p.Screen.X)

	if subCell {
		halfY := int(p.Screen.Y * 2.0)
		buf.BlendHalf(x, halfY, color, alpha)
		if p.Scale > splatScale {
			buf.BlendHalf(x-1, halfY, color, alpha*splatAlpha)
			buf.BlendHalf(x+1, halfY, color, alpha*splatAlpha)
		}
		return
	}

	y := int(p.Screen.Y)
	buf.BlendCell(x, y, color, alpha)
	if p.Scale > splatScale {
		buf.BlendCell(x-1, y, color, alpha*splatAlpha)
		buf.BlendCell(x+1, y, color, alpha*splatAlpha)
	}
}
