package field

import (
	"math"

	"github.com/lixenwraith/driftfield/vmath"
)

// CellSize is the spatial bucket width in buffer coordinates. Square in
// buffer space; the terminal cell aspect makes buckets visually 2:1, which
// is fine because queries only answer "is near", not exact neighborhoods.
const CellSize = 8

// MaxPerCell is set to 15 so that gridCell fits exactly into 64 bytes
// (one cache line): 15 * 4 (indices) + 1 (count) + 3 (padding)
const MaxPerCell = 15

// gridCell holds a fixed number of particle indices as a value type for
// contiguous memory layout
type gridCell struct {
	count   uint8
	_       [3]byte // Explicit padding for 4-byte index alignment
	indices [MaxPerCell]int32
}

// SpatialGrid buckets visible particles by screen position for bounded
// neighbor searches. Rebuilt from scratch every frame: at this particle
// count a full Clear+Insert beats incremental bookkeeping and keeps the
// cells cache-hot, a deliberate trade-off rather than an optimization gap.
type SpatialGrid struct {
	cols, rows int
	cells      []gridCell
}

// forwardOffsets is the query cell plus the asymmetric adjacent subset
// {E, SW, S, SE}. Scanning every cell as a source makes the symmetric
// half redundant; exhaustive deduplicated pairs are not required.
var forwardOffsets = [5][2]int{{0, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// NewSpatialGrid sizes a grid for a buffer of width x height cells
func NewSpatialGrid(width, height int) *SpatialGrid {
	cols := (width + CellSize - 1) / CellSize
	rows := (height + CellSize - 1) / CellSize
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &SpatialGrid{
		cols:  cols,
		rows:  rows,
		cells: make([]gridCell, cols*rows),
	}
}

// Cols returns the grid width in buckets
func (g *SpatialGrid) Cols() int { return g.cols }

// Rows returns the grid height in buckets
func (g *SpatialGrid) Rows() int { return g.rows }

// Clear empties all buckets; the backing array is reused
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].count = 0
	}
}

// Resize re-dimensions the grid for a new buffer size, dropping contents
func (g *SpatialGrid) Resize(width, height int) {
	ng := NewSpatialGrid(width, height)
	if ng.cols*ng.rows <= cap(g.cells) {
		g.cells = g.cells[:ng.cols*ng.rows]
		g.Clear()
	} else {
		g.cells = ng.cells
	}
	g.cols = ng.cols
	g.rows = ng.rows
}

// Insert buckets a particle index by its screen position.
// O(1). Returns false if out of bounds or the bucket is full (soft clip,
// not an error: an overfull bucket only loses connection candidates).
func (g *SpatialGrid) Insert(idx int32, screen vmath.Vec2) bool {
	cx := int(math.Floor(screen.X / CellSize))
	cy := int(math.Floor(screen.Y / CellSize))
	if cx < 0 || cx >= g.cols || cy < 0 || cy >= g.rows {
		return false
	}

	cell := &g.cells[cy*g.cols+cx]
	if cell.count >= MaxPerCell {
		return false
	}
	cell.indices[cell.count] = idx
	cell.count++
	return true
}

// CellIndices returns a slice view of the bucket at (cx, cy), nil if empty
// or out of bounds. The view is invalidated by Clear/Insert/Resize.
func (g *SpatialGrid) CellIndices(cx, cy int) []int32 {
	if cx < 0 || cx >= g.cols || cy < 0 || cy >= g.rows {
		return nil
	}
	cell := &g.cells[cy*g.cols+cx]
	if cell.count == 0 {
		return nil
	}
	return cell.indices[:cell.count]
}

// ForEachNeighbor visits every particle index in the forward-neighbor
// subset of (cx, cy), excluding the bucket at (cx, cy) itself
func (g *SpatialGrid) ForEachNeighbor(cx, cy int, fn func(idx int32) bool) {
	for _, off := range forwardOffsets[1:] {
		for _, idx := range g.CellIndices(cx+off[0], cy+off[1]) {
			if !fn(idx) {
				return
			}
		}
	}
}
