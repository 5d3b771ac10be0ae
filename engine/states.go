package engine

import "github.com/lixenwraith/tracer/engine/fsm"

// Region names
const (
	RegionDash     = "dash"
	RegionMovement = "movement"
)

// State IDs, flat within each region
const (
	StateDashIdle fsm.StateID = iota + 1
	StateDashActive
	StateLive
	StateRewinding
)
