package systems

import (
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tracer/constants"
	"github.com/lixenwraith/tracer/engine"
	"github.com/lixenwraith/tracer/events"
	"github.com/lixenwraith/tracer/status"
	"github.com/lixenwraith/tracer/vmath"
)

// Dash FSM bindings
const (
	GuardDashReady    = "dash.ready"
	GuardDashFinished = "dash.finished"
	ActionDashEnter   = "dash.enter"
	ActionDashUpdate  = "dash.update"
	ActionDashExit    = "dash.exit"
)

// DashSystem owns dash charges, cooldown and recharge
// Idle/Active lives in the FSM dash region, the actions below are bound to it
type DashSystem struct {
	statActivations *atomic.Int64
	statRejected    *atomic.Int64
	statRecharges   *atomic.Int64
}

func NewDashSystem(reg *status.Registry) *DashSystem {
	return &DashSystem{
		statActivations: reg.Ints.Get(status.DashActivations),
		statRejected:    reg.Ints.Get(status.DashRejected),
		statRecharges:   reg.Ints.Get(status.DashRecharges),
	}
}

func (ds *DashSystem) Priority() int {
	return constants.PriorityDash
}

// Update decrements cooldown and refills charges, carrying the remainder into the next interval
func (ds *DashSystem) Update(world *engine.World, dt time.Duration) {
	dash := &world.Dash

	if dash.Cooldown > 0 {
		dash.Cooldown -= dt
		if dash.Cooldown < 0 {
			dash.Cooldown = 0
		}
	}

	if dash.Charges >= dash.MaxCharges {
		return
	}

	interval := world.Config.Dash.RechargeInterval
	dash.RechargeRemaining -= dt
	for dash.RechargeRemaining <= 0 && dash.Charges < dash.MaxCharges {
		dash.Charges++
		ds.statRecharges.Add(1)
		world.Observer.OnChargeChanged(dash.Charges, dash.MaxCharges)

		if dash.Charges < dash.MaxCharges {
			dash.RechargeRemaining += interval
		} else {
			dash.RechargeRemaining = 0
		}
	}
}

// Request routes a dash request through the FSM, false when it was ignored
func (ds *DashSystem) Request(world *engine.World) bool {
	if world.Machine.HandleEvent(world, events.EventDashRequest) {
		return true
	}
	ds.statRejected.Add(1)
	return false
}

// ready gates Idle -> Active
func (ds *DashSystem) ready(world *engine.World) bool {
	if !world.Dash.Ready() {
		return false
	}
	return world.CanMove() || world.Config.Rewind.AbilitiesDuringRewind
}

func (ds *DashSystem) finished(world *engine.World) bool {
	return world.Dash.Remaining <= 0
}

func (ds *DashSystem) enter(world *engine.World) {
	cfg := world.Config.Dash
	dash := &world.Dash

	dash.Charges--
	dash.Cooldown = cfg.Cooldown
	if dash.RechargeRemaining <= 0 {
		dash.RechargeRemaining = cfg.RechargeInterval
	}
	dash.Remaining = cfg.Duration

	world.SetGravityScale(0)
	world.AddImpulse(vmath.Hadamard3(cfg.Launch.Vec(), world.Intent.Forward), true, true)

	ds.statActivations.Add(1)
	world.Observer.OnDashConsumed(dash.Charges, dash.MaxCharges)
	world.Logf("dash: activate charges=%d/%d forward=%v", dash.Charges, dash.MaxCharges, world.Intent.Forward)
}

// update injects forward drift through the live path so it is recorded like player input
func (ds *DashSystem) update(world *engine.World) {
	if world.Intent.Accepting {
		world.AddMove(mgl64.Vec2{0, world.Config.Dash.DriftInput})
	}
	world.Dash.Remaining -= world.Delta
}

func (ds *DashSystem) exit(world *engine.World) {
	world.Dash.Remaining = 0
	world.SetGravityScale(world.Config.Dash.GravityScale)
	world.StopHorizontal()
	world.AddImpulse(mgl64.Vec3{0, 0, -world.Config.Dash.EndDrop}, false, false)
	world.Logf("dash: end")
}
