package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tracer/constants"
	"github.com/lixenwraith/tracer/events"
)

// Machine parses terminal key events into intents and queues character events
type Machine struct {
	keyTable *KeyTable
	queue    *events.EventQueue

	// Damage applied per IntentDamage
	damage float64
}

// NewMachine creates a new input machine writing to queue
func NewMachine(queue *events.EventQueue) *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		queue:    queue,
		damage:   constants.DebugDamage,
	}
}

// Parse maps a key event to an intent without side effects
func (m *Machine) Parse(ev *tcell.EventKey) Intent {
	entry, ok := m.keyTable.Lookup(ev)
	if !ok {
		return Intent{}
	}
	return Intent{Type: entry.Intent, Axis: entry.Axis}
}

// Process parses ev, pushes character intents to the queue and returns the intent
// Callers act on system intents themselves
func (m *Machine) Process(ev *tcell.EventKey) Intent {
	intent := m.Parse(ev)
	if intent.Type == IntentNone || intent.Type.IsSystem() {
		return intent
	}

	if ge, ok := ToEvent(intent, m.damage); ok {
		ge.Timestamp = time.Now()
		m.queue.Push(ge)
	}
	return intent
}

// ToEvent converts a character intent to its queued event
func ToEvent(intent Intent, damage float64) (events.GameEvent, bool) {
	switch intent.Type {
	case IntentMove:
		return events.GameEvent{Type: events.EventMoveInput, Payload: &events.VectorPayload{Value: intent.Axis}}, true
	case IntentLook:
		return events.GameEvent{Type: events.EventLookInput, Payload: &events.VectorPayload{Value: intent.Axis}}, true
	case IntentDash:
		return events.GameEvent{Type: events.EventDashRequest}, true
	case IntentRewind:
		return events.GameEvent{Type: events.EventRewindRequest}, true
	case IntentDamage:
		return events.GameEvent{Type: events.EventDamage, Payload: &events.AmountPayload{Amount: damage}}, true
	case IntentFire:
		return events.GameEvent{Type: events.EventFire, Payload: &events.AmountPayload{Amount: 1}}, true
	case IntentReload:
		return events.GameEvent{Type: events.EventReload}, true
	}
	return events.GameEvent{}, false
}
