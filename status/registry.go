package status

import "sync/atomic"

// Metric keys written by the character core
const (
	EngineTicks      = "engine.ticks"
	HistoryRecords   = "history.records"
	DashActivations  = "dash.activations"
	DashRejected     = "dash.rejected"
	DashRecharges    = "dash.recharges"
	RewindCount      = "rewind.count"
	RewindReplayed   = "rewind.replayed"
	RewindRejected   = "rewind.rejected"
	InputDropped     = "input.dropped"
	InputOverwritten = "input.overwritten"
)

// Gauges published once per tick for renderers
const (
	DashStateKey     = "fsm.dash"      // Strings
	MovementStateKey = "fsm.movement"  // Strings
	DashActiveKey    = "dash.active"   // Bools
	RewindActiveKey  = "rewind.active" // Bools
	DashCooldownKey  = "dash.cooldown" // Floats, seconds
	DashRechargeKey  = "dash.recharge" // Floats, seconds
	VitalsHealthKey  = "vitals.health" // Floats
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// IntSnapshot copies every integer metric, used by trace output and the HUD
func (r *Registry) IntSnapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
