package events

import (
	"sync"
	"testing"

	"github.com/lixenwraith/tracer/constants"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()

	order := []EventType{EventMoveInput, EventDashRequest, EventLookInput, EventRewindRequest}
	for _, et := range order {
		q.Push(GameEvent{Type: et})
	}

	if q.Pending() != len(order) {
		t.Errorf("Expected %d pending, got %d", len(order), q.Pending())
	}

	got := q.Consume()
	if len(got) != len(order) {
		t.Fatalf("Expected %d events, got %d", len(order), len(got))
	}
	for i, ev := range got {
		if ev.Type != order[i] {
			t.Errorf("Event %d: expected %v, got %v", i, order[i], ev.Type)
		}
	}

	if again := q.Consume(); again != nil {
		t.Errorf("Queue should be empty after Consume, got %d events", len(again))
	}
}

// TestQueueOverflowDropsOldest verifies the newest EventQueueSize events survive overflow
func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := constants.EventQueueSize + 10

	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventDamage, Payload: &AmountPayload{Amount: float64(i)}})
	}

	got := q.Consume()
	if len(got) != constants.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", constants.EventQueueSize, len(got))
	}

	first := got[0].Payload.(*AmountPayload).Amount
	if first != 10 {
		t.Errorf("Oldest surviving event should be 10, got %v", first)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped events, got %d", q.Dropped())
	}
}

func TestDrainContinuesAcrossCalls(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 3; i++ {
		q.Push(GameEvent{Type: EventFire, Payload: &AmountPayload{Amount: float64(i)}})
	}

	var seen []float64
	collect := func(ev GameEvent) {
		seen = append(seen, ev.Payload.(*AmountPayload).Amount)
	}
	if n := q.Drain(collect); n != 3 {
		t.Fatalf("Expected 3 delivered, got %d", n)
	}

	q.Push(GameEvent{Type: EventFire, Payload: &AmountPayload{Amount: 3}})
	if n := q.Drain(collect); n != 1 {
		t.Fatalf("Expected 1 delivered, got %d", n)
	}
	for i, v := range seen {
		if v != float64(i) {
			t.Errorf("Event %d = %v, want %d", i, v, i)
		}
	}
	if q.Dropped() != 0 {
		t.Errorf("Nothing should be dropped, got %d", q.Dropped())
	}
}

// TestDrainWrapsRepeatedly pushes several laps of the ring with a read after each batch
func TestDrainWrapsRepeatedly(t *testing.T) {
	q := NewEventQueue()
	next := 0.0
	for lap := 0; lap < 5; lap++ {
		for i := 0; i < constants.EventQueueSize/2+7; i++ {
			q.Push(GameEvent{Type: EventDamage, Payload: &AmountPayload{Amount: next}})
			next++
		}
		got := q.Consume()
		if len(got) != constants.EventQueueSize/2+7 {
			t.Fatalf("Lap %d: expected %d events, got %d", lap, constants.EventQueueSize/2+7, len(got))
		}
		if last := got[len(got)-1].Payload.(*AmountPayload).Amount; last != next-1 {
			t.Errorf("Lap %d: last event %v, want %v", lap, last, next-1)
		}
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers = 4
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventMoveInput})
			}
		}()
	}
	wg.Wait()

	got := q.Consume()
	if len(got) != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, len(got))
	}
}

func TestEventTypeString(t *testing.T) {
	if EventDashRequest.String() != "DashRequest" {
		t.Errorf("Unexpected name %q", EventDashRequest.String())
	}
	if EventType(999).String() != "Unknown" {
		t.Errorf("Unknown type should report Unknown")
	}
}
