package systems

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/tracer/components"
	"github.com/lixenwraith/tracer/engine"
	"github.com/lixenwraith/tracer/events"
	"github.com/lixenwraith/tracer/status"
)

// Rewind FSM bindings
const (
	GuardRewindDone    = "rewind.done"
	ActionRewindEnter  = "rewind.enter"
	ActionRewindUpdate = "rewind.update"
	ActionRewindExit   = "rewind.exit"
)

// RewindSystem replays the history buffer newest to oldest while the movement region is Rewinding
// It has no per-tick Update of its own, replay is driven by the bound OnUpdate action
type RewindSystem struct {
	statCount    *atomic.Int64
	statReplayed *atomic.Int64
	statRejected *atomic.Int64
}

func NewRewindSystem(reg *status.Registry) *RewindSystem {
	return &RewindSystem{
		statCount:    reg.Ints.Get(status.RewindCount),
		statReplayed: reg.Ints.Get(status.RewindReplayed),
		statRejected: reg.Ints.Get(status.RewindRejected),
	}
}

// Request routes a rewind request through the FSM, false when already rewinding
func (rs *RewindSystem) Request(world *engine.World) bool {
	if world.Machine.HandleEvent(world, events.EventRewindRequest) {
		return true
	}
	rs.statRejected.Add(1)
	return false
}

func (rs *RewindSystem) done(world *engine.World) bool {
	return world.Rewind.Cursor < 0
}

func (rs *RewindSystem) enter(world *engine.World) {
	world.Rewind.Cursor = world.History.Len() - 1
	world.Rewind.Replayed = 0

	rs.statCount.Add(1)
	world.Observer.OnRewindStateChanged(true)
	world.Logf("rewind: begin samples=%d", world.History.Len())
}

// update replays exactly one sample per tick regardless of dt
func (rs *RewindSystem) update(world *engine.World) {
	sample, err := world.History.At(world.Rewind.Cursor)
	if err != nil {
		// Cursor is bounded by enter and done, reaching here means state corruption
		panic(fmt.Errorf("rewind replay: %w", err))
	}

	world.EmitReplay(sample)
	if world.Config.Rewind.RestoreVitals {
		world.Vitals = components.VitalsComponent{Health: sample.Health, Ammo: sample.Ammo}
	}

	world.Rewind.Cursor--
	world.Rewind.Replayed++
	rs.statReplayed.Add(1)
}

func (rs *RewindSystem) exit(world *engine.World) {
	replayed := world.Rewind.Replayed
	world.Rewind.Cursor = components.RewindCursorIdle

	world.Observer.OnRewindStateChanged(false)
	world.Logf("rewind: end replayed=%d", replayed)
}
