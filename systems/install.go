package systems

import (
	"fmt"

	"github.com/lixenwraith/tracer/engine"
	"github.com/lixenwraith/tracer/engine/fsm"
	"github.com/lixenwraith/tracer/events"
)

// Abilities holds the systems that own request routing, returned by Install
type Abilities struct {
	Dash     *DashSystem
	Rewind   *RewindSystem
	Recorder *RecorderSystem
}

type binding struct {
	id     fsm.StateID
	phase  fsm.Phase
	action string
}

type edge struct {
	from, to fsm.StateID
	event    events.EventType
	guard    string
}

// Install registers systems, builds both FSM regions and enters their initial states
func Install(world *engine.World) (*Abilities, error) {
	reg := world.Status
	ab := &Abilities{
		Dash:     NewDashSystem(reg),
		Rewind:   NewRewindSystem(reg),
		Recorder: NewRecorderSystem(reg),
	}

	m := world.Machine

	m.RegisterGuard(GuardDashReady, ab.Dash.ready)
	m.RegisterGuard(GuardDashFinished, ab.Dash.finished)
	m.RegisterAction(ActionDashEnter, ab.Dash.enter)
	m.RegisterAction(ActionDashUpdate, ab.Dash.update)
	m.RegisterAction(ActionDashExit, ab.Dash.exit)

	m.RegisterGuard(GuardRewindDone, ab.Rewind.done)
	m.RegisterAction(ActionRewindEnter, ab.Rewind.enter)
	m.RegisterAction(ActionRewindUpdate, ab.Rewind.update)
	m.RegisterAction(ActionRewindExit, ab.Rewind.exit)

	m.AddState(engine.StateDashIdle, "Idle", fsm.StateNone)
	m.AddState(engine.StateDashActive, "Active", fsm.StateNone)
	m.AddState(engine.StateLive, "Live", fsm.StateNone)
	m.AddState(engine.StateRewinding, "Rewinding", fsm.StateNone)

	edges := []edge{
		{engine.StateDashIdle, engine.StateDashActive, events.EventDashRequest, GuardDashReady},
		{engine.StateDashActive, engine.StateDashIdle, events.EventNone, GuardDashFinished},
		{engine.StateLive, engine.StateRewinding, events.EventRewindRequest, ""},
		{engine.StateRewinding, engine.StateLive, events.EventNone, GuardRewindDone},
	}
	for _, e := range edges {
		if err := m.AddTransition(e.from, e.to, e.event, e.guard); err != nil {
			return nil, fmt.Errorf("fsm transition: %w", err)
		}
	}

	bindings := []binding{
		{engine.StateDashActive, fsm.PhaseEnter, ActionDashEnter},
		{engine.StateDashActive, fsm.PhaseUpdate, ActionDashUpdate},
		{engine.StateDashActive, fsm.PhaseExit, ActionDashExit},
		{engine.StateRewinding, fsm.PhaseEnter, ActionRewindEnter},
		{engine.StateRewinding, fsm.PhaseUpdate, ActionRewindUpdate},
		{engine.StateRewinding, fsm.PhaseExit, ActionRewindExit},
	}
	for _, b := range bindings {
		if err := m.Bind(b.id, b.phase, b.action); err != nil {
			return nil, fmt.Errorf("fsm bind: %w", err)
		}
	}

	if err := m.CompilePaths(); err != nil {
		return nil, fmt.Errorf("fsm compile: %w", err)
	}

	// Dash region is evaluated first so drift sees the movement gate of the previous step
	if err := m.AddRegion(engine.RegionDash, engine.StateDashIdle); err != nil {
		return nil, err
	}
	if err := m.AddRegion(engine.RegionMovement, engine.StateLive); err != nil {
		return nil, err
	}

	world.AddSystem(ab.Dash)
	world.AddSystem(ab.Recorder)

	if err := m.Init(world); err != nil {
		return nil, fmt.Errorf("fsm init: %w", err)
	}
	return ab, nil
}
