package fsm

import (
	"time"

	"github.com/lixenwraith/tracer/events"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
)

// Machine is the generic region-based Hierarchical Finite State Machine runtime
// T is the context type passed to actions and guards (e.g., *engine.World)
// Regions run in parallel and are evaluated in registration order
type Machine[T any] struct {
	// Graph Data (Immutable after CompilePaths)
	nodes map[StateID]*Node[T]

	// Runtime State, one entry per region in registration order
	regions []*RegionState

	// Dependency Injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// RegionState is the runtime state of one parallel region
type RegionState struct {
	Name          string
	InitialID     StateID
	ActiveStateID StateID       // The current leaf node
	TimeInState   time.Duration // Time elapsed in current state
	ActivePath    []StateID     // Stack of active states (Root -> Child -> Leaf)
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node, used for LCA lookup
	Path []StateID

	// Lifecycle Actions
	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    events.EventType // EventNone = Tick (auto-transition)
	Guard    GuardFunc[T]     // nil = Always true
}

// Phase selects which lifecycle list an action is bound to
type Phase uint8

const (
	PhaseEnter Phase = iota
	PhaseUpdate
	PhaseExit
)

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
