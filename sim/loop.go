package sim

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/driftfield/audio"
	"github.com/lixenwraith/driftfield/field"
	"github.com/lixenwraith/driftfield/render"
	"github.com/lixenwraith/driftfield/vmath"
)

// State is the loop lifecycle. Cancellation is a state transition checked
// at the top of every tick, not an exception.
type State int32

const (
	// StateIdle: cloud generated, nothing rendered yet
	StateIdle State = iota
	// StateRunning: one tick in flight per tick period
	StateRunning
	// StateStopped: terminal; no further ticks are scheduled
	StateStopped
)

const (
	defaultTickRate = 30

	// pointerLerp smooths raw input targets so the field lags the pointer
	// instead of snapping to it
	pointerLerp = 0.12

	// autoSpinRate keeps the field turning with no input, rad/s
	autoSpinRate = 0.12

	// Pointer tilt limits, radians at the screen edge
	maxTiltYaw   = 0.6
	maxTiltPitch = 0.35

	// Click burst: transient force multiplier bonus and its per-tick decay
	burstBonus = 2.0
	burstDecay = 0.82

	// resizeDebounce is the quiet period before a resize rebuilds the
	// particle set and projector
	resizeDebounce = 250 * time.Millisecond

	// dt clamp against scheduling hiccups
	maxFrameDt = 0.1
)

// Config is the renderer's external surface
type Config struct {
	// ParticleOverride forces the particle count when > 0, otherwise the
	// governor decides
	ParticleOverride int

	// AccentColor fills the palette's accent slot; zero value keeps the
	// default
	AccentColor render.RGB

	// Variant selects the pointer force shape
	Variant field.Variant

	// Constrained marks a device the governor should derate
	Constrained bool

	// Seed fixes the random source; 0 derives one from the clock
	Seed uint64

	// TickRate in frames per second; 0 means defaultTickRate
	TickRate int

	// Chime fires on click bursts; nil is silent
	Chime *audio.Chime
}

// Loop owns one rendering session: the particle set, its per-frame
// transforms, and the tick goroutine. Exactly one tick mutates simulation
// state at a time; the host's input goroutine only writes PointerState
// targets and the atomic knobs below.
type Loop struct {
	screen  tcell.Screen
	cfg     Config
	profile field.Profile
	pal     render.Palette

	pointer field.PointerState
	variant atomic.Uint32
	paused  atomic.Bool

	state    atomic.Int32
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	frames   atomic.Uint64

	// Pending resize handoff: width<<32|height and the apply deadline.
	// The in-flight frame never observes a mid-frame rebuild; the next
	// tick past the deadline picks the new dimensions up.
	pendingSize     atomic.Uint64
	pendingDeadline atomic.Int64

	// Everything below is owned by the tick goroutine
	parts      []field.Particle
	proj       field.Projector
	grid       *field.SpatialGrid
	buf        *render.Buffer
	force      field.ForceField
	rng        *vmath.FastRand
	curX, curY float64
	curScroll  float64
	seenInput  bool
	autoYaw    float64
	burst      float64
	lastTick   time.Time
}

// New builds a session against the given screen. A nil screen is the
// "unsupported drawing context" case: the loop is inert and Start is a
// no-op, because the renderer is decorative and must degrade silently.
func New(screen tcell.Screen, cfg Config) *Loop {
	l := &Loop{
		screen:   screen,
		cfg:      cfg,
		stopChan: make(chan struct{}),
	}
	l.variant.Store(uint32(cfg.Variant))

	if screen == nil {
		l.state.Store(int32(StateStopped))
		return l
	}

	w, h := screen.Size()
	l.profile = field.Decide(cfg.Constrained, w, h, cfg.ParticleOverride)

	accent := cfg.AccentColor
	if accent == (render.RGB{}) {
		accent = render.RGB{R: 255, G: 170, B: 80}
	}
	l.pal = render.NewPalette(accent)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	l.rng = vmath.NewFastRand(seed)

	l.parts = field.GenerateCloud(l.profile.ParticleCount, render.PaletteSize-1, l.rng)
	l.proj = field.NewProjector(w, h)
	l.grid = field.NewSpatialGrid(w, h)
	l.buf = render.NewBuffer(w, h)
	l.force = field.NewForceField(cfg.Variant)
	return l
}

// Pointer exposes the input target state for the host event loop
func (l *Loop) Pointer() *field.PointerState {
	return &l.pointer
}

// State returns the current lifecycle state
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Frames returns the number of completed ticks
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// SetVariant switches the force shape at runtime; safe from the input
// goroutine
func (l *Loop) SetVariant(v field.Variant) {
	l.variant.Store(uint32(v))
}

// TogglePause flips the tick body on and off; the clock keeps running
func (l *Loop) TogglePause() {
	l.paused.Store(!l.paused.Load())
}

// NotifyResize records new screen dimensions. The rebuild happens at the
// top of a tick once no further resize has arrived for resizeDebounce.
func (l *Loop) NotifyResize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	l.pendingSize.Store(uint64(width)<<32 | uint64(uint32(height)))
	l.pendingDeadline.Store(time.Now().Add(resizeDebounce).UnixNano())
}

// Start begins scheduling ticks. No-op unless the loop is Idle with a
// usable screen.
func (l *Loop) Start() {
	if l.screen == nil {
		return
	}
	if !l.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return
	}

	rate := l.cfg.TickRate
	if rate <= 0 {
		rate = defaultTickRate
	}
	period := time.Second / time.Duration(rate)

	l.lastTick = time.Now()
	l.wg.Add(1)
	go l.run(period)
}

// Stop tears the session down: no further ticks are scheduled and the
// running tick, if any, completes first. Idempotent; a second Stop is a
// no-op, not an error. Detaching input feeds is the host's side of the
// contract, but a stopped loop ignores anything that still arrives.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		running := l.state.Swap(int32(StateStopped)) == int32(StateRunning)
		close(l.stopChan)
		if running {
			l.wg.Wait()
		}
	})
}

func (l *Loop) run(period time.Duration) {
	defer l.wg.Done()

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case now := <-ticker.C:
			l.tick(now)
		}
	}
}

// applyResize rebuilds viewport-derived state if a debounced resize is due.
// A resize fully reconstructs the particle set rather than rescaling in
// place; the capacity profile stays the one-shot decision from startup.
func (l *Loop) applyResize(now time.Time) {
	packed := l.pendingSize.Load()
	if packed == 0 {
		return
	}
	if now.UnixNano() < l.pendingDeadline.Load() {
		return
	}
	if !l.pendingSize.CompareAndSwap(packed, 0) {
		return
	}

	w := int(packed >> 32)
	h := int(uint32(packed))

	l.buf.Resize(w, h)
	l.grid.Resize(w, h)
	l.proj = field.NewProjector(w, h)
	l.parts = field.GenerateCloud(l.profile.ParticleCount, render.PaletteSize-1, l.rng)
}

// tick runs one frame. Order matters: inputs smooth first, the grid is
// rebuilt from this frame's projections only, and connections run against
// the freshly built grid.
func (l *Loop) tick(now time.Time) {
	if l.state.Load() != int32(StateRunning) {
		return
	}

	l.applyResize(now)

	if l.paused.Load() {
		l.lastTick = now
		return
	}

	dt := now.Sub(l.lastTick).Seconds()
	l.lastTick = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDt {
		dt = maxFrameDt
	}

	// (1) Smooth pointer and scroll toward their raw targets
	tx, ty, active := l.pointer.Target()
	if active {
		if !l.seenInput {
			// First input snaps to avoid a sweep from the origin
			l.curX, l.curY = tx, ty
			l.seenInput = true
		} else {
			l.curX = vmath.Lerp(l.curX, tx, pointerLerp)
			l.curY = vmath.Lerp(l.curY, ty, pointerLerp)
		}
	}
	l.curScroll = vmath.Lerp(l.curScroll, l.pointer.ScrollTarget(), pointerLerp)

	if l.pointer.ConsumeBurst() {
		l.burst = burstBonus
		l.cfg.Chime.Burst()
	}
	forceMult := 1.0 + l.burst
	l.burst *= burstDecay

	// (2) Rotation: manual tilt plus the auto-spin term
	l.autoYaw += autoSpinRate * dt
	w, h := l.buf.Size()
	var tiltX, tiltY float64
	if l.seenInput && w > 0 && h > 0 {
		tiltX = vmath.Clamp(l.curX/float64(w)*2.0-1.0, -1, 1)
		tiltY = vmath.Clamp(l.curY/float64(h)*2.0-1.0, -1, 1)
	}
	yaw := l.autoYaw + tiltX*maxTiltYaw
	pitch := tiltY * maxTiltPitch

	// (3) Fresh grid and backdrop for this frame
	l.grid.Clear()
	l.buf.Clear()

	l.force.Variant = field.Variant(l.variant.Load())
	scroll := l.curScroll * field.FieldRadius
	pointerPos := vmath.Vec2{X: l.curX, Y: l.curY}

	// (4) Per particle: force, projection, draw, index
	for i := range l.parts {
		p := &l.parts[i]
		proj := l.proj.Project(p.Rest, yaw, pitch, scroll)

		if !proj.Visible {
			// Culled particles keep decaying so they do not re-enter
			// with a stale displacement
			l.force.Integrate(p, vmath.Vec2{})
			p.Visible = false
			p.Scale = 0
			continue
		}

		p.Scale = proj.Scale
		if l.seenInput {
			l.force.Apply(p, proj.Screen, pointerPos, forceMult)
		} else {
			l.force.Integrate(p, vmath.Vec2{})
		}
		p.Screen = vmath.V2Add(proj.Screen, p.ForceOffset)
		p.Visible = true

		render.DrawParticle(l.buf, p, proj.Depth, l.pal, l.profile.SubCell)
		l.grid.Insert(int32(i), p.Screen)
	}

	// (5) Connection pass against the rebuilt index
	render.DrawConnections(l.buf, l.grid, l.parts, l.pal, l.profile.ConnectionBudget, l.rng)

	// (6) Present
	l.buf.FlushToScreen(l.screen)
	l.frames.Add(1)
}
