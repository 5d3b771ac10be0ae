package fsm

import (
	"fmt"

	"github.com/lixenwraith/tracer/events"
)

// AddState adds a node to the machine
func (m *Machine[T]) AddState(id StateID, name string, parentID StateID) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		ParentID:    parentID,
		Transitions: make([]Transition[T], 0),
	}
	m.nodes[id] = node
	return node
}

// AddTransition adds a transition to a specific node
// guardName "" means the transition is unconditional
func (m *Machine[T]) AddTransition(sourceID, targetID StateID, event events.EventType, guardName string) error {
	node, ok := m.nodes[sourceID]
	if !ok {
		return fmt.Errorf("transition source state %d not found", sourceID)
	}
	if _, ok := m.nodes[targetID]; !ok {
		return fmt.Errorf("transition target state %d not found", targetID)
	}

	var guard GuardFunc[T]
	if guardName != "" {
		guard, ok = m.guardReg[guardName]
		if !ok {
			return fmt.Errorf("unknown guard '%s'", guardName)
		}
	}

	node.Transitions = append(node.Transitions, Transition[T]{
		TargetID: targetID,
		Event:    event,
		Guard:    guard,
	})
	return nil
}

// Bind attaches a registered action to a state lifecycle phase
func (m *Machine[T]) Bind(id StateID, phase Phase, actionName string) error {
	node, ok := m.nodes[id]
	if !ok {
		return fmt.Errorf("state %d not found", id)
	}
	fn, ok := m.actionReg[actionName]
	if !ok {
		return fmt.Errorf("unknown action '%s'", actionName)
	}

	switch phase {
	case PhaseEnter:
		node.OnEnter = append(node.OnEnter, fn)
	case PhaseUpdate:
		node.OnUpdate = append(node.OnUpdate, fn)
	case PhaseExit:
		node.OnExit = append(node.OnExit, fn)
	default:
		return fmt.Errorf("unknown phase %d", phase)
	}
	return nil
}

// AddRegion declares a parallel region starting in initialID
// Regions are initialized by Init in declaration order
func (m *Machine[T]) AddRegion(name string, initialID StateID) error {
	for _, r := range m.regions {
		if r.Name == name {
			return fmt.Errorf("region '%s' already exists", name)
		}
	}
	if _, ok := m.nodes[initialID]; !ok {
		return fmt.Errorf("region '%s': initial state %d not found", name, initialID)
	}
	m.regions = append(m.regions, &RegionState{Name: name, InitialID: initialID})
	return nil
}

// CompilePaths calculates the Path slice for every node in the graph
// Must be called after all nodes are added and before Init
func (m *Machine[T]) CompilePaths() error {
	for id, node := range m.nodes {
		path := make([]StateID, 0, 4)
		curr := node

		// Walk up to root
		for {
			path = append(path, curr.ID)
			if curr.ParentID == StateNone {
				break
			}
			parent, ok := m.nodes[curr.ParentID]
			if !ok {
				return fmt.Errorf("node %d references missing parent %d", id, curr.ParentID)
			}
			if len(path) > len(m.nodes) {
				return fmt.Errorf("node %d has a parent cycle", id)
			}
			curr = parent
		}

		// Reverse to get [Root, ..., Leaf]
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}

		node.Path = path
	}
	return nil
}
