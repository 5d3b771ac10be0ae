package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

// TestSoundManagerWithoutDevice covers every call path that must not touch the speaker
func TestSoundManagerWithoutDevice(t *testing.T) {
	sm := NewSoundManager()

	if sm.Initialized() {
		t.Error("New manager should not be initialized")
	}
	if sm.SampleRate() != beep.SampleRate(44100) {
		t.Errorf("Unexpected sample rate %d", sm.SampleRate())
	}

	// Neither call may panic before Initialize
	sm.Play(CreateWhooshSound(sm.SampleRate(), 1))
	sm.Cleanup()
}

func TestCuesDispatch(t *testing.T) {
	var played []beep.Streamer
	c := NewCues(func(s beep.Streamer) { played = append(played, s) }, testRate, 0.5)

	c.OnDashConsumed(2, 3)
	c.OnChargeChanged(3, 3)
	c.OnRewindStateChanged(true)
	c.OnRewindStateChanged(false)

	if len(played) != 4 {
		t.Fatalf("Expected 4 cues, got %d", len(played))
	}
	for i, s := range played {
		if drain(t, s) == 0 {
			t.Errorf("Cue %d produced no samples", i)
		}
	}
}

func TestCuesMute(t *testing.T) {
	count := 0
	c := NewCues(func(beep.Streamer) { count++ }, testRate, 1)

	if !c.ToggleMute() || !c.Muted() {
		t.Fatal("First toggle should mute")
	}
	c.OnDashConsumed(0, 3)
	if count != 0 {
		t.Error("Muted cues must not play")
	}

	if c.ToggleMute() {
		t.Fatal("Second toggle should unmute")
	}
	c.OnDashConsumed(0, 3)
	if count != 1 {
		t.Error("Unmuted cue should play")
	}
}
