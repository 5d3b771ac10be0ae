package audio

import (
	"sync/atomic"

	"github.com/gopxl/beep"
)

// PlayFunc receives a finished streamer, e.g. SoundManager.Play
type PlayFunc func(beep.Streamer)

// Cues turns ability notifications into sounds
// Implements engine.Observer; calls arrive on the tick goroutine and only enqueue streamers
type Cues struct {
	play   PlayFunc
	rate   beep.SampleRate
	volume float64
	muted  atomic.Bool
}

func NewCues(play PlayFunc, rate beep.SampleRate, volume float64) *Cues {
	return &Cues{play: play, rate: rate, volume: volume}
}

// NewSpeakerCues binds cues to an initialized sound manager
func NewSpeakerCues(sm *SoundManager, volume float64) *Cues {
	return NewCues(sm.Play, sm.SampleRate(), volume)
}

// ToggleMute flips the mute flag and returns the new state
func (c *Cues) ToggleMute() bool {
	for {
		old := c.muted.Load()
		if c.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (c *Cues) Muted() bool {
	return c.muted.Load()
}

func (c *Cues) emit(t SoundType) {
	if c.muted.Load() || c.play == nil {
		return
	}
	if s := GetSoundEffect(t, c.rate, c.volume); s != nil {
		c.play(s)
	}
}

// OnChargeChanged plays a bell for every refilled charge
func (c *Cues) OnChargeChanged(charges, max int) {
	c.emit(SoundBell)
}

// OnDashConsumed plays the launch whoosh
func (c *Cues) OnDashConsumed(charges, max int) {
	c.emit(SoundWhoosh)
}

func (c *Cues) OnRewindStateChanged(active bool) {
	if active {
		c.emit(SoundRewindStart)
	} else {
		c.emit(SoundRewindEnd)
	}
}
