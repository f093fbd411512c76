package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	burstTone   = 660 // Hz
	burstLength = 60 * time.Millisecond
)

// Chime plays a short tone on pointer bursts. The renderer is decorative,
// so audio is strictly optional: a nil *Chime is silent and every method
// is nil-safe.
type Chime struct{}

// NewChime initializes the speaker. Returns nil on failure; the caller
// keeps the nil and stays silent.
func NewChime() *Chime {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil
	}
	return &Chime{}
}

// Burst plays the click tone, non-blocking
func (c *Chime) Burst() {
	if c == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, burstTone)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(burstLength), sine))
}

// Close releases the speaker. Safe to call once after Stop; nil-safe.
func (c *Chime) Close() {
	if c == nil {
		return
	}
	speaker.Close()
}
