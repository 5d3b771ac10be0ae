package events

import (
	"time"
)

// EventType represents the type of character event
type EventType int

const (
	// EventNone is the zero value; FSM transitions on EventNone are evaluated every tick
	EventNone EventType = iota

	// EventMoveInput carries one movement axis sample
	// Trigger: InputHandler (WASD), script runner
	// Consumer: input.Collector | Payload: *VectorPayload
	EventMoveInput

	// EventLookInput carries one look axis sample
	// Trigger: InputHandler (arrows), script runner
	// Consumer: input.Collector | Payload: *VectorPayload
	EventLookInput

	// EventDashRequest signals the first ability was triggered
	// Trigger: InputHandler, Character.ActivateDash
	// Consumer: FSM dash region | Payload: nil
	EventDashRequest

	// EventRewindRequest signals the second ability was triggered
	// Trigger: InputHandler, Character.BeginRewind
	// Consumer: FSM movement region | Payload: nil
	EventRewindRequest

	// EventDamage signals health loss from an external collaborator
	// Trigger: InputHandler (debug key) | Payload: *AmountPayload
	EventDamage

	// EventFire signals ammo spent by the weapon collaborator
	// Trigger: InputHandler | Payload: *AmountPayload
	EventFire

	// EventReload signals the weapon collaborator refilled ammo
	// Trigger: InputHandler | Payload: nil
	EventReload
)

var eventNames = map[EventType]string{
	EventNone:          "None",
	EventMoveInput:     "MoveInput",
	EventLookInput:     "LookInput",
	EventDashRequest:   "DashRequest",
	EventRewindRequest: "RewindRequest",
	EventDamage:        "Damage",
	EventFire:          "Fire",
	EventReload:        "Reload",
}

// String returns the event name for logs
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent represents a single character event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
