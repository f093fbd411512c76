package field

import (
	"math"
	"sync/atomic"
)

// PointerState carries raw input targets from the host event loop into the
// simulation. Contract: single writer (the input goroutine), single reader
// (the tick). Writers only store target values; no computation happens on
// the input path, so event delivery can never block a frame or vice versa.
//
// Scalars are stored as float64 bits in atomics so reads during a tick see
// whole values without locking.
type PointerState struct {
	x      atomic.Uint64
	y      atomic.Uint64
	scroll atomic.Uint64
	active atomic.Bool
	burst  atomic.Bool
}

// SetTarget records the raw pointer position in buffer coordinates
func (p *PointerState) SetTarget(x, y float64) {
	p.x.Store(math.Float64bits(x))
	p.y.Store(math.Float64bits(y))
	p.active.Store(true)
}

// Target returns the raw pointer target and whether any pointer input has
// arrived this session
func (p *PointerState) Target() (x, y float64, active bool) {
	return math.Float64frombits(p.x.Load()),
		math.Float64frombits(p.y.Load()),
		p.active.Load()
}

// AddScroll accumulates a wheel delta into the scroll depth target.
// Load+store is safe under the single-writer contract.
func (p *PointerState) AddScroll(delta float64) {
	cur := math.Float64frombits(p.scroll.Load())
	p.scroll.Store(math.Float64bits(cur + delta))
}

// ScrollTarget returns the accumulated scroll depth target
func (p *PointerState) ScrollTarget() float64 {
	return math.Float64frombits(p.scroll.Load())
}

// TriggerBurst flags a click impulse; the tick consumes it exactly once
func (p *PointerState) TriggerBurst() {
	p.burst.Store(true)
}

// ConsumeBurst reports and clears a pending click impulse
func (p *PointerState) ConsumeBurst() bool {
	return p.burst.Swap(false)
}
