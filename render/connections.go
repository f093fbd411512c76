package render

import (
	"github.com/lixenwraith/driftfield/field"
	"github.com/lixenwraith/driftfield/vmath"
)

const (
	// ConnectDist is the maximum screen distance for a connection line
	ConnectDist   = 9.0
	connectDistSq = ConnectDist * ConnectDist

	// connSourceChance is the per-frame probability that a non-accent
	// particle acts as a connection source. A cost-amortization heuristic
	// with no accuracy target: tune freely, nothing depends on the graph
	// this produces.
	connSourceChance = 0.05

	// lineAlphaMax caps line brightness so connections stay subordinate
	// to the particles they join
	lineAlphaMax = 0.33
)

// DrawConnections walks the spatial grid and draws faint lines between
// nearby visible particles. budget is a hard per-frame cap: once reached,
// remaining candidate pairs are skipped outright. Returns the number of
// lines drawn.
func DrawConnections(buf *Buffer, grid *field.SpatialGrid, parts []field.Particle, pal Palette, budget int, rng *vmath.FastRand) int {
	if budget <= 0 {
		return 0
	}

	drawn := 0
	for cy := 0; cy < grid.Rows(); cy++ {
		for cx := 0; cx < grid.Cols(); cx++ {
			bucket := grid.CellIndices(cx, cy)
			for bi, si := range bucket {
				src := &parts[si]

				// Accent particles connect every frame; the rest are
				// sampled so their cost amortizes across frames
				if !src.IsAccent && !rng.Chance(connSourceChance) {
					continue
				}

				// Later occupants of the same bucket, then the forward
				// neighbor subset; earlier occupants already had their
				// turn as sources
				for _, ti := range bucket[bi+1:] {
					if drawn >= budget {
						return drawn
					}
					drawn += connect(buf, src, &parts[ti], pal)
				}

				capped := false
				grid.ForEachNeighbor(cx, cy, func(ti int32) bool {
					if drawn >= budget {
						capped = true
						return false
					}
					drawn += connect(buf, src, &parts[ti], pal)
					return true
				})
				if capped {
					return drawn
				}
			}
		}
	}
	return drawn
}

// connect draws one line if the pair is close enough, returning 1 if drawn
func connect(buf *Buffer, a, b *field.Particle, pal Palette) int {
	d := vmath.V2Sub(b.Screen, a.Screen)
	distSq := vmath.V2MagSq(d)
	if distSq >= connectDistSq {
		return 0
	}

	alpha := (1.0 - distSq/connectDistSq) * lineAlphaMax
	color := Lerp(pal.ColorOf(a), pal.ColorOf(b), 0.5)

	t := vmath.NewCellTraverser(a.Screen.X, a.Screen.Y, b.Screen.X, b.Screen.Y)
	for t.Next() {
		x, y := t.Pos()
		buf.AddCell(x, y, color, alpha)
	}
	return 1
}
