package engine

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/tracer/components"
	"github.com/lixenwraith/tracer/config"
	"github.com/lixenwraith/tracer/engine/fsm"
	"github.com/lixenwraith/tracer/history"
	"github.com/lixenwraith/tracer/status"
	"github.com/lixenwraith/tracer/vmath"
)

// System is an interface that all systems must implement
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// World holds the state of a single character
// Not safe for concurrent use; one goroutine drives Tick
type World struct {
	ID     uuid.UUID
	Config config.Config

	Dash   components.DashComponent
	Rewind components.RewindComponent
	Vitals components.VitalsComponent
	Intent components.IntentComponent

	History  *history.Buffer
	Machine  *fsm.Machine[*World]
	Observer Observer
	Status   *status.Registry

	// Delta is the dt of the tick in progress, FSM actions read it
	Delta time.Duration

	systems []System

	// out accumulates between Finalize calls
	out Output

	statDropped *atomic.Int64
}

// SpawnForward is the facing used until the host supplies a forward vector
var SpawnForward = mgl64.Vec3{1, 0, 0}

// NewWorld validates cfg and allocates the character state
// A nil observer or registry is replaced with a no-op / private instance
func NewWorld(cfg config.Config, observer Observer, reg *status.Registry) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if observer == nil {
		observer = NopObserver{}
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	w := &World{
		ID:       uuid.New(),
		Config:   cfg,
		Machine:  fsm.NewMachine[*World](),
		Observer: observer,
		Status:   reg,
		Dash: components.DashComponent{
			Charges:    cfg.Dash.MaxCharges,
			MaxCharges: cfg.Dash.MaxCharges,
		},
		Rewind: components.RewindComponent{Cursor: components.RewindCursorIdle},
		Intent: components.IntentComponent{Forward: SpawnForward},
		Vitals: components.VitalsComponent{Health: cfg.Vitals.Health, Ammo: cfg.Vitals.Ammo},
	}

	buf, err := history.New(cfg.History.Size, w.SpawnSample())
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	w.History = buf
	w.out.GravityScale = cfg.Dash.GravityScale
	w.statDropped = reg.Ints.Get(status.InputDropped)

	return w, nil
}

// SpawnSample is the idle sample used to pre-fill history
func (w *World) SpawnSample() components.HistorySample {
	return components.HistorySample{
		Health: w.Config.Vitals.Health,
		Ammo:   w.Config.Vitals.Ammo,
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort systems by priority (bubble sort is fine for small number of systems)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns the registered systems in run order
func (w *World) Systems() []System {
	return w.systems
}

// Update runs all systems
func (w *World) Update(dt time.Duration) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// BeginFrame clears per-tick intent; a zero forward keeps the previous one
func (w *World) BeginFrame(forward mgl64.Vec3) {
	w.Intent.Clear()
	if !vmath.IsZero3(forward) {
		w.Intent.Forward = forward
	}
}

// CanMove reports whether the movement gate is open
func (w *World) CanMove() bool {
	return w.Machine.IsIn(RegionMovement, StateLive)
}

// Rewinding reports whether history is being replayed
func (w *World) Rewinding() bool {
	return w.Machine.IsIn(RegionMovement, StateRewinding)
}

// DashActive reports whether a dash is in progress
func (w *World) DashActive() bool {
	return w.Machine.IsIn(RegionDash, StateDashActive)
}

// LiveMove applies host movement input if the gate accepted input this tick
func (w *World) LiveMove(v mgl64.Vec2) bool {
	if !w.Intent.Accepting {
		w.statDropped.Add(1)
		return false
	}
	w.AddMove(v)
	return true
}

// LiveLook applies host look input if the gate accepted input this tick
func (w *World) LiveLook(v mgl64.Vec2) bool {
	if !w.Intent.Accepting {
		w.statDropped.Add(1)
		return false
	}
	w.AddLook(v)
	return true
}

// AddMove contributes movement to both the output and the recorded intent
func (w *World) AddMove(v mgl64.Vec2) {
	w.Intent.Move = w.Intent.Move.Add(v)
	w.Intent.HasMove = true
	w.out.Move = w.out.Move.Add(v)
}

// AddLook contributes rotation to both the output and the recorded intent
func (w *World) AddLook(v mgl64.Vec2) {
	w.Intent.Look = w.Intent.Look.Add(v)
	w.Intent.HasRotate = true
	w.out.Look = w.out.Look.Add(v)
}

// EmitReplay writes the inverse of a recorded sample to the output only
func (w *World) EmitReplay(s components.HistorySample) {
	inv := s.Negated()
	w.out.Move = w.out.Move.Add(inv.Movement)
	w.out.Look = w.out.Look.Add(inv.Rotation)
}

// AddImpulse queues a velocity change; override flags are sticky until Finalize
func (w *World) AddImpulse(v mgl64.Vec3, overrideXY, overrideZ bool) {
	w.out.Impulse = w.out.Impulse.Add(v)
	w.out.HasImpulse = true
	w.out.OverrideXY = w.out.OverrideXY || overrideXY
	w.out.OverrideZ = w.out.OverrideZ || overrideZ
}

// SetGravityScale changes the persistent gravity multiplier
func (w *World) SetGravityScale(scale float64) {
	w.out.GravityScale = scale
}

// StopHorizontal asks the host to cancel horizontal velocity
func (w *World) StopHorizontal() {
	w.out.StopHorizontal = true
}

// Pending returns the output accumulated so far without clearing it
func (w *World) Pending() Output {
	return w.out
}

// Finalize returns the accumulated output and starts a new one
func (w *World) Finalize() Output {
	out := w.out
	w.out.clearTransient()
	return out
}

// Sample builds the history entry for the current tick from accepted intent and vitals
func (w *World) Sample() components.HistorySample {
	s := components.HistorySample{
		Health: w.Vitals.Health,
		Ammo:   w.Vitals.Ammo,
	}
	if w.Intent.HasMove {
		s.Movement = w.Intent.Move
	}
	if w.Intent.HasRotate {
		s.Rotation = w.Intent.Look
	}
	return s
}

// Logf writes a state transition log line tagged with the character id
func (w *World) Logf(format string, args ...any) {
	log.Printf("[%s] "+format, append([]any{w.ID.String()[:8]}, args...)...)
}
