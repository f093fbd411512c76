package render

import (
	"github.com/gdamore/tcell/v2"
)

// halfBlock renders the upper half of a cell in the foreground color and
// the lower half in the background color, giving 2x vertical resolution
const halfBlock = '▀'

// Cell carries independent colors for the upper and lower halves of one
// terminal cell. Full-cell writes set both halves to the same color.
type Cell struct {
	Top, Bottom RGB
	Set         bool
}

// Buffer is a color compositor over a grid of half-block cells with
// persistent storage for output reuse across frames
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions in terminal cells
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Size returns buffer dimensions in terminal cells
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to the backdrop using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Top: RgbBackground, Bottom: RgbBackground}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in buffer bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y) and whether the position is in bounds
func (b *Buffer) At(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// BlendCell alpha-blends a color into both halves of a cell
func (b *Buffer) BlendCell(x, y int, c RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Top = Blend(dst.Top, c, alpha)
	dst.Bottom = Blend(dst.Bottom, c, alpha)
	dst.Set = true
}

// AddCell additively blends a color into both halves of a cell, used for
// connection lines so crossings brighten instead of overwriting
func (b *Buffer) AddCell(x, y int, c RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Top = Add(dst.Top, c, alpha)
	dst.Bottom = Add(dst.Bottom, c, alpha)
	dst.Set = true
}

// BlendHalf alpha-blends a color into one half of a cell. halfY addresses
// vertical half-rows: halfY = 2*y for the top half, 2*y+1 for the bottom.
func (b *Buffer) BlendHalf(x, halfY int, c RGB, alpha float64) {
	y := halfY >> 1
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	if halfY&1 == 0 {
		dst.Top = Blend(dst.Top, c, alpha)
	} else {
		dst.Bottom = Blend(dst.Bottom, c, alpha)
	}
	dst.Set = true
}

// FlushToScreen writes the buffer to a tcell screen and shows it
func (b *Buffer) FlushToScreen(s tcell.Screen) {
	bgStyle := tcell.StyleDefault.Background(RgbBackground.ToTcell())
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := range row {
			c := &row[x]
			if !c.Set {
				s.SetContent(x, y, ' ', nil, bgStyle)
				continue
			}
			style := tcell.StyleDefault.
				Foreground(c.Top.ToTcell()).
				Background(c.Bottom.ToTcell())
			s.SetContent(x, y, halfBlock, nil, style)
		}
	}
	s.Show()
}
