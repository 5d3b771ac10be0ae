package input

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tracer/events"
	"github.com/lixenwraith/tracer/vmath"
)

// Collector folds queued events into one Frame per tick
type Collector struct {
	// MaxMove clamps the summed movement axis, 0 disables clamping
	MaxMove float64
}

func NewCollector() *Collector {
	return &Collector{MaxMove: 1}
}

// Collect folds evs in order; forward is passed through to the tick input
func (c *Collector) Collect(evs []events.GameEvent, forward mgl64.Vec3) Frame {
	f := c.begin(forward)
	for _, ev := range evs {
		f.add(ev)
	}
	return f.finish()
}

// Fold drains q directly into a frame, the per-tick path of the interactive driver
func (c *Collector) Fold(q *events.EventQueue, forward mgl64.Vec3) Frame {
	f := c.begin(forward)
	q.Drain(f.add)
	return f.finish()
}

func (c *Collector) begin(forward mgl64.Vec3) *folder {
	f := &folder{maxMove: c.MaxMove}
	f.frame.Input.Forward = forward
	return f
}

// folder accumulates one tick worth of events
type folder struct {
	frame      Frame
	move, look mgl64.Vec2
	hasMove    bool
	hasLook    bool
	maxMove    float64
}

func (f *folder) add(ev events.GameEvent) {
	switch ev.Type {
	case events.EventMoveInput:
		if p, ok := ev.Payload.(*events.VectorPayload); ok {
			f.move = f.move.Add(p.Value)
			f.hasMove = true
		}
	case events.EventLookInput:
		if p, ok := ev.Payload.(*events.VectorPayload); ok {
			f.look = f.look.Add(p.Value)
			f.hasLook = true
		}
	case events.EventDashRequest:
		f.frame.Input.Dash = true
	case events.EventRewindRequest:
		f.frame.Input.Rewind = true
	case events.EventDamage:
		if p, ok := ev.Payload.(*events.AmountPayload); ok {
			f.frame.Damage += p.Amount
		}
	case events.EventFire:
		if p, ok := ev.Payload.(*events.AmountPayload); ok {
			f.frame.AmmoSpent += int(p.Amount)
		}
	case events.EventReload:
		f.frame.Reload = true
	}
}

func (f *folder) finish() Frame {
	if f.hasMove {
		move := f.move
		if f.maxMove > 0 {
			move = vmath.ClampMagnitude2(move, f.maxMove)
		}
		f.frame.Input.Move = &move
	}
	if f.hasLook {
		look := f.look
		f.frame.Input.Look = &look
	}
	return f.frame
}
