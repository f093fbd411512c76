package field

import (
	"math"

	"github.com/lixenwraith/driftfield/vmath"
)

const (
	// DefaultFocal is the perspective focal length in field units
	DefaultFocal = 3.0

	// nearPlaneDenom is the minimum perspective denominator; anything
	// closer is behind the camera's near plane and culled
	nearPlaneDenom = 0.35

	// aspectX doubles horizontal displacement since terminal cells are
	// roughly twice as tall as they are wide
	aspectX = 2.0

	// depthRange is the wrap span for scrolled depth; particles leaving
	// the near side re-enter from the far side
	depthRange = 2.0 * FieldRadius

	// viewFill is the fraction of the short screen axis the unit field
	// sphere spans at scale 1
	viewFill = 0.42
)

// Projector converts rotated, scrolled field-space points into buffer
// coordinates plus a perspective scale factor. Value type; rebuilt (not
// mutated) when the viewport changes so an in-flight frame keeps its
// original dimensions.
type Projector struct {
	Width, Height int
	Focal         float64
	ViewScale     float64
}

// NewProjector sizes a projector for a buffer of width x height cells
func NewProjector(width, height int) Projector {
	short := math.Min(float64(width)/aspectX, float64(height))
	return Projector{
		Width:     width,
		Height:    height,
		Focal:     DefaultFocal,
		ViewScale: viewFill * short,
	}
}

// WrapDepth folds z into [-FieldRadius, FieldRadius) by repeated
// add/subtract. Iteration instead of modulo keeps large single-frame
// scroll deltas continuous across the wrap seam.
func WrapDepth(z float64) float64 {
	for z >= FieldRadius {
		z -= depthRange
	}
	for z < -FieldRadius {
		z += depthRange
	}
	return z
}

// Projection is one particle's per-frame view state
type Projection struct {
	Screen  vmath.Vec2
	Scale   float64
	Depth   float64 // Wrapped depth, negative is near
	Visible bool
}

// Project transforms a rest position by yaw (around Y) then pitch
// (around X), applies scroll depth with wrap, and projects to the buffer.
// Returns Visible=false when the point lands behind the near plane or the
// projection degenerates; callers must not read Screen/Scale in that case.
func (pr Projector) Project(rest vmath.Vec3, yaw, pitch, scroll float64) Projection {
	p := vmath.RotateX(vmath.RotateY(rest, yaw), pitch)
	z := WrapDepth(p.Z + scroll)

	denom := pr.Focal + z
	if denom < nearPlaneDenom {
		return Projection{}
	}

	scale := pr.Focal / denom
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return Projection{}
	}

	return Projection{
		Screen: vmath.Vec2{
			X: float64(pr.Width)/2.0 + p.X*scale*pr.ViewScale*aspectX,
			Y: float64(pr.Height)/2.0 + p.Y*scale*pr.ViewScale,
		},
		Scale:   scale,
		Depth:   z,
		Visible: true,
	}
}
