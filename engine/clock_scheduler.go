package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tracer/core"
	"github.com/lixenwraith/tracer/status"
)

// TickFunc advances the simulation by one fixed step
type TickFunc func(dt time.Duration)

// ClockScheduler drives a TickFunc on a fixed interval from its own goroutine
// Handles pause-aware scheduling without busy-wait
type ClockScheduler struct {
	tick         TickFunc
	tickInterval time.Duration

	isPaused atomic.Bool

	nextTickDeadline time.Time
	mu               sync.Mutex

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// updateDone is signalled after every tick, dropped if the reader is behind
	updateDone chan struct{}

	statTicks *atomic.Int64
}

// NewClockScheduler creates a scheduler and returns the update-done channel for the renderer
func NewClockScheduler(tickInterval time.Duration, tick TickFunc, reg *status.Registry) (*ClockScheduler, <-chan struct{}) {
	if reg == nil {
		reg = status.NewRegistry()
	}
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		tick:         tick,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		updateDone:   updateDone,
		statTicks:    reg.Ints.Get(status.EngineTicks),
	}
	return cs, updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the running tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
		}
	})
}

// Pause suspends ticking, the loop keeps running
func (cs *ClockScheduler) Pause() {
	cs.isPaused.Store(true)
}

// Resume restarts ticking from now, missed ticks are not replayed
func (cs *ClockScheduler) Resume() {
	if cs.isPaused.CompareAndSwap(true, false) {
		cs.mu.Lock()
		cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
		cs.mu.Unlock()
	}
}

// IsPaused reports the pause flag
func (cs *ClockScheduler) IsPaused() bool {
	return cs.isPaused.Load()
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		var sleepDuration time.Duration

		if cs.isPaused.Load() {
			// Increase sleep interval while paused to save CPU
			sleepDuration = cs.tickInterval * 2
		} else {
			now := time.Now()

			cs.mu.Lock()
			deadline := cs.nextTickDeadline
			cs.mu.Unlock()

			if !now.Before(deadline) {
				cs.processTick()

				cs.mu.Lock()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

				// Drop backlog instead of bursting ticks after a stall
				maxBehind := cs.tickInterval * 2
				if now.Sub(cs.nextTickDeadline) > maxBehind {
					cs.nextTickDeadline = now.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()

				sleepDuration = time.Until(deadline)
			} else {
				sleepDuration = deadline.Sub(now)
			}
		}

		if sleepDuration <= 0 {
			select {
			case <-cs.stopChan:
				return
			default:
			}
			continue
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(sleepDuration)

		select {
		case <-timer.C:
		case <-cs.stopChan:
			return
		}
	}
}

// processTick executes one clock cycle with the fixed interval as dt
func (cs *ClockScheduler) processTick() {
	cs.tick(cs.tickInterval)

	ticks := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(ticks))

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}
