// @focus: #character { tick, abilities }
package character

import (
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/tracer/components"
	"github.com/lixenwraith/tracer/config"
	"github.com/lixenwraith/tracer/engine"
	"github.com/lixenwraith/tracer/input"
	"github.com/lixenwraith/tracer/status"
	"github.com/lixenwraith/tracer/systems"
)

// Character is the simulation core for one player-controlled character
// Not safe for concurrent use, drive it from a single goroutine
type Character struct {
	world     *engine.World
	abilities *systems.Abilities
	reg       *status.Registry
	ticks     uint64

	// Cached gauge pointers, written once per tick
	statDashState     *status.AtomicString
	statMovementState *status.AtomicString
	statDashActive    *atomic.Bool
	statRewindActive  *atomic.Bool
	statCooldown      *status.AtomicFloat
	statRecharge      *status.AtomicFloat
	statHealth        *status.AtomicFloat
}

// Option customizes construction
type Option func(*options)

type options struct {
	reg *status.Registry
}

// WithRegistry shares a metrics registry with the caller
func WithRegistry(reg *status.Registry) Option {
	return func(o *options) { o.reg = reg }
}

// New builds a character in the Live and dash Idle states with full charges and a spawn-filled history
func New(cfg config.Config, observer engine.Observer, opts ...Option) (*Character, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.reg == nil {
		o.reg = status.NewRegistry()
	}

	world, err := engine.NewWorld(cfg, observer, o.reg)
	if err != nil {
		return nil, err
	}
	abilities, err := systems.Install(world)
	if err != nil {
		return nil, err
	}

	c := &Character{
		world:             world,
		abilities:         abilities,
		reg:               o.reg,
		statDashState:     o.reg.Strings.Get(status.DashStateKey),
		statMovementState: o.reg.Strings.Get(status.MovementStateKey),
		statDashActive:    o.reg.Bools.Get(status.DashActiveKey),
		statRewindActive:  o.reg.Bools.Get(status.RewindActiveKey),
		statCooldown:      o.reg.Floats.Get(status.DashCooldownKey),
		statRecharge:      o.reg.Floats.Get(status.DashRechargeKey),
		statHealth:        o.reg.Floats.Get(status.VitalsHealthKey),
	}
	c.publishState()
	world.Logf("spawn history=%d charges=%d", world.History.Len(), world.Dash.MaxCharges)
	return c, nil
}

// Tick advances the simulation by dt and returns the output for the host body
func (c *Character) Tick(dt time.Duration, in input.TickInput) engine.Output {
	w := c.world
	w.Delta = dt
	w.BeginFrame(in.Forward)

	// Ability edges before the gate is latched so a rewind started this tick drops live input
	// When abilities are locked out during rewind, the rewind edge goes first so a same-tick dash sees the closed gate
	rewindFirst := !w.Config.Rewind.AbilitiesDuringRewind
	if in.Rewind && rewindFirst {
		c.abilities.Rewind.Request(w)
	}
	if in.Dash {
		c.abilities.Dash.Request(w)
	}
	if in.Rewind && !rewindFirst {
		c.abilities.Rewind.Request(w)
	}

	w.Intent.Accepting = w.CanMove()

	if in.Move != nil {
		w.LiveMove(*in.Move)
	}
	if in.Look != nil {
		w.LiveLook(*in.Look)
	}

	w.Machine.Update(w, dt)
	w.Update(dt)

	c.ticks++
	c.publishState()
	return w.Finalize()
}

// ActivateDash requests a dash outside of Tick, its impulse lands in the next Tick output
// A zero forward keeps the last forward vector, engine.SpawnForward until the host supplies one
func (c *Character) ActivateDash(forward mgl64.Vec3) bool {
	w := c.world
	if forward != (mgl64.Vec3{}) {
		w.Intent.Forward = forward
	}
	ok := c.abilities.Dash.Request(w)
	c.publishState()
	return ok
}

// BeginRewind starts replay outside of Tick; ignored while already rewinding
func (c *Character) BeginRewind() bool {
	ok := c.abilities.Rewind.Request(c.world)
	c.publishState()
	return ok
}

// publishState copies the observable state into the registry gauges read by the HUD
func (c *Character) publishState() {
	w := c.world
	c.statDashState.Store(w.Machine.RegionState(engine.RegionDash))
	c.statMovementState.Store(w.Machine.RegionState(engine.RegionMovement))
	c.statDashActive.Store(w.DashActive())
	c.statRewindActive.Store(w.Rewinding())
	c.statCooldown.Set(w.Dash.Cooldown.Seconds())
	c.statRecharge.Set(w.Dash.RechargeRemaining.Seconds())
	c.statHealth.Set(w.Vitals.Health)
}

func (c *Character) ID() uuid.UUID                       { return c.world.ID }
func (c *Character) Config() config.Config               { return c.world.Config }
func (c *Character) Status() *status.Registry            { return c.reg }
func (c *Character) CanMove() bool                       { return c.world.CanMove() }
func (c *Character) Rewinding() bool                     { return c.world.Rewinding() }
func (c *Character) DashActive() bool                    { return c.world.DashActive() }
func (c *Character) Cursor() int                         { return c.world.Rewind.Cursor }
func (c *Character) Charges() int                        { return c.world.Dash.Charges }
func (c *Character) MaxCharges() int                     { return c.world.Dash.MaxCharges }
func (c *Character) Cooldown() time.Duration             { return c.world.Dash.Cooldown }
func (c *Character) Health() float64                     { return c.world.Vitals.Health }
func (c *Character) Ammo() int                           { return c.world.Vitals.Ammo }
func (c *Character) Ticks() uint64                       { return c.ticks }
func (c *Character) History() []components.HistorySample { return c.world.History.Snapshot() }

// SetHealth is written by collaborators, the value is recorded on the next Live tick
func (c *Character) SetHealth(v float64) { c.world.Vitals.Health = v }

// SetAmmo is written by collaborators, negative values clamp to 0
func (c *Character) SetAmmo(v int) {
	if v < 0 {
		v = 0
	}
	c.world.Vitals.Ammo = v
}

// AddHealth applies a signed health change and returns the new value
func (c *Character) AddHealth(delta float64) float64 {
	c.world.Vitals.Health += delta
	return c.world.Vitals.Health
}

// SpendAmmo removes n rounds if available
func (c *Character) SpendAmmo(n int) bool {
	if n <= 0 || c.world.Vitals.Ammo < n {
		return false
	}
	c.world.Vitals.Ammo -= n
	return true
}

// Snapshot is a copy of the observable state for renderers and traces
type Snapshot struct {
	ID                uuid.UUID
	Tick              uint64
	CanMove           bool
	Rewinding         bool
	Cursor            int
	HistoryLen        int
	DashState         string
	MovementState     string
	Charges           int
	MaxCharges        int
	Cooldown          time.Duration
	RechargeRemaining time.Duration
	Health            float64
	Ammo              int

	// Time spent in the current state of each region
	DashElapsed     time.Duration
	MovementElapsed time.Duration

	// Recorded is the newest history sample, what the last Live tick stored
	Recorded components.HistorySample
}

func (c *Character) Snapshot() Snapshot {
	w := c.world
	return Snapshot{
		ID:                w.ID,
		Tick:              c.ticks,
		CanMove:           w.CanMove(),
		Rewinding:         w.Rewinding(),
		Cursor:            w.Rewind.Cursor,
		HistoryLen:        w.History.Len(),
		DashState:         w.Machine.RegionState(engine.RegionDash),
		MovementState:     w.Machine.RegionState(engine.RegionMovement),
		Charges:           w.Dash.Charges,
		MaxCharges:        w.Dash.MaxCharges,
		Cooldown:          w.Dash.Cooldown,
		RechargeRemaining: w.Dash.RechargeRemaining,
		Health:            w.Vitals.Health,
		Ammo:              w.Vitals.Ammo,
		DashElapsed:       w.Machine.RegionTimeInState(engine.RegionDash),
		MovementElapsed:   w.Machine.RegionTimeInState(engine.RegionMovement),
		Recorded:          w.History.Newest(),
	}
}

// Step applies a frame's collaborator side effects, then ticks with its input
func (c *Character) Step(dt time.Duration, f input.Frame) engine.Output {
	if f.Damage != 0 {
		c.AddHealth(-f.Damage)
	}
	if f.AmmoSpent > 0 {
		c.SpendAmmo(f.AmmoSpent)
	}
	if f.Reload {
		c.SetAmmo(c.world.Config.Vitals.Ammo)
	}
	return c.Tick(dt, f.Input)
}
