package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/tracer/events"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state of every declared region
func (m *Machine[T]) Init(ctx T) error {
	if len(m.regions) == 0 {
		return fmt.Errorf("FSM has no defined regions to initialize")
	}

	for _, region := range m.regions {
		if err := m.initRegion(ctx, region); err != nil {
			return fmt.Errorf("region '%s': %w", region.Name, err)
		}
	}
	return nil
}

// initRegion enters a single region's initial state
func (m *Machine[T]) initRegion(ctx T, region *RegionState) error {
	node, ok := m.nodes[region.InitialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", region.InitialID)
	}
	if len(node.Path) == 0 {
		return fmt.Errorf("state %d has no compiled path", node.ID)
	}

	region.ActiveStateID = node.ID
	region.TimeInState = 0
	region.ActivePath = append(region.ActivePath[:0], node.Path...)

	// Execute OnEnter for the entire chain from Root to Initial
	for _, id := range region.ActivePath {
		for _, action := range m.nodes[id].OnEnter {
			action(ctx)
		}
	}
	return nil
}

// Update advances the FSM by delta time for all active regions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	for _, region := range m.regions {
		m.updateRegion(ctx, region, dt)
	}
}

// updateRegion runs OnUpdate for the leaf, then evaluates tick transitions (Event == EventNone) bubbling up
func (m *Machine[T]) updateRegion(ctx T, region *RegionState, dt time.Duration) {
	if region.ActiveStateID == StateNone {
		return
	}

	region.TimeInState += dt

	leaf := m.nodes[region.ActiveStateID]
	for _, action := range leaf.OnUpdate {
		action(ctx)
	}

	m.fire(ctx, region, events.EventNone)
}

// HandleEvent routes an external event through all active regions
// Returns true if the event triggered a transition in any region
func (m *Machine[T]) HandleEvent(ctx T, eventType events.EventType) bool {
	if eventType == events.EventNone {
		return false
	}

	handled := false
	for _, region := range m.regions {
		if region.ActiveStateID == StateNone {
			continue
		}
		if m.fire(ctx, region, eventType) {
			handled = true
		}
	}
	return handled
}

// fire takes the first transition matching eventType whose guard passes, bubbling Leaf -> Root
func (m *Machine[T]) fire(ctx T, region *RegionState, eventType events.EventType) bool {
	currID := region.ActiveStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != eventType {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transitionRegion(ctx, region, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transitionRegion performs state change within a specific region
func (m *Machine[T]) transitionRegion(ctx T, region *RegionState, targetID StateID) {
	if region.ActiveStateID == targetID {
		return
	}

	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d in region '%s'", targetID, region.Name))
	}

	// Find LCA
	lcaIndex := -1
	currentPath := region.ActivePath
	targetPath := targetNode.Path

	minLen := min(len(currentPath), len(targetPath))
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	// Exit Phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		for _, action := range m.nodes[currentPath[i]].OnExit {
			action(ctx)
		}
	}

	// Enter Phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		for _, action := range m.nodes[targetPath[i]].OnEnter {
			action(ctx)
		}
	}

	region.ActiveStateID = targetID
	region.TimeInState = 0
	region.ActivePath = append(region.ActivePath[:0], targetPath...)
}

// RegionState returns current state name for a region
func (m *Machine[T]) RegionState(regionName string) string {
	if region := m.region(regionName); region != nil {
		if node, ok := m.nodes[region.ActiveStateID]; ok {
			return node.Name
		}
	}
	return ""
}

// RegionTimeInState returns time spent in current state for a region
func (m *Machine[T]) RegionTimeInState(regionName string) time.Duration {
	if region := m.region(regionName); region != nil {
		return region.TimeInState
	}
	return 0
}

// IsIn reports whether id is on the active path of the named region
func (m *Machine[T]) IsIn(regionName string, id StateID) bool {
	region := m.region(regionName)
	if region == nil {
		return false
	}
	for _, active := range region.ActivePath {
		if active == id {
			return true
		}
	}
	return false
}

func (m *Machine[T]) region(name string) *RegionState {
	for _, r := range m.regions {
		if r.Name == name {
			return r
		}
	}
	return nil
}
