package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/tracer/status"
)

func TestClockSchedulerTicksWithFixedDelta(t *testing.T) {
	reg := status.NewRegistry()
	var ticks atomic.Int64
	var badDelta atomic.Bool

	interval := 2 * time.Millisecond
	cs, done := NewClockScheduler(interval, func(dt time.Duration) {
		if dt != interval {
			badDelta.Store(true)
		}
		ticks.Add(1)
	}, reg)

	cs.Start()
	for i := 0; i < 5; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Timed out waiting for tick")
		}
	}
	cs.Stop()

	if badDelta.Load() {
		t.Error("Tick should always receive the configured interval")
	}
	if ticks.Load() < 5 {
		t.Errorf("Expected at least 5 ticks, got %d", ticks.Load())
	}
	if got := reg.Ints.Get(status.EngineTicks).Load(); got != int64(cs.TickCount()) {
		t.Errorf("Metric %d does not match tick count %d", got, cs.TickCount())
	}
}

func TestClockSchedulerStopIsIdempotent(t *testing.T) {
	cs, _ := NewClockScheduler(time.Millisecond, func(time.Duration) {}, nil)
	cs.Start()
	cs.Start()
	cs.Stop()
	cs.Stop()

	count := cs.TickCount()
	time.Sleep(10 * time.Millisecond)
	if cs.TickCount() != count {
		t.Error("No ticks should run after Stop")
	}
}

func TestClockSchedulerStopBeforeStart(t *testing.T) {
	cs, _ := NewClockScheduler(time.Millisecond, func(time.Duration) {}, nil)
	cs.Stop()
	if cs.TickCount() != 0 {
		t.Error("Scheduler never started")
	}
}

func TestClockSchedulerPause(t *testing.T) {
	cs, done := NewClockScheduler(time.Millisecond, func(time.Duration) {}, nil)
	cs.Start()
	defer cs.Stop()

	<-done
	cs.Pause()
	if !cs.IsPaused() {
		t.Fatal("Pause flag not set")
	}

	// Let any in-flight tick settle
	time.Sleep(5 * time.Millisecond)
	paused := cs.TickCount()
	time.Sleep(10 * time.Millisecond)
	if cs.TickCount() != paused {
		t.Errorf("Ticks advanced while paused: %d -> %d", paused, cs.TickCount())
	}

	// Drain a stale signal produced before the pause took effect
	select {
	case <-done:
	default:
	}

	cs.Resume()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Ticks did not resume")
	}
}
