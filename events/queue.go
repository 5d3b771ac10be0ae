// @focus: #event { queue }
package events

import (
	"sync/atomic"

	"github.com/lixenwraith/tracer/constants"
)

// EventQueue is a bounded MPSC ring of character events
// Producers: terminal goroutine, script feeders. Consumer: the tick goroutine only
//
// Every slot is stamped with the sequence number of the event it holds. A stamp behind
// the reader means a producer claimed the slot but has not finished writing; a stamp
// ahead means the slot was overwritten after the ring wrapped. When full, the oldest
// events are lost and counted in Dropped
type EventQueue struct {
	slots   [constants.EventQueueSize]eventSlot
	tail    atomic.Uint64 // next sequence to claim
	head    atomic.Uint64 // next sequence to read, stored by the consumer only
	dropped atomic.Uint64
}

type eventSlot struct {
	stamp atomic.Uint64 // sequence+1 once published, 0 while being written
	event GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims the next sequence and publishes ev into its slot
func (q *EventQueue) Push(ev GameEvent) {
	seq := q.tail.Add(1) - 1
	s := &q.slots[seq&constants.EventBufferMask]
	s.stamp.Store(0)
	s.event = ev
	s.stamp.Store(seq + 1)
}

// Drain hands pending events to fn in FIFO order and returns how many were delivered
// Stops early at a slot still being written; the rest is picked up by the next Drain
func (q *EventQueue) Drain(fn func(GameEvent)) int {
	head := q.head.Load()
	tail := q.tail.Load()

	if lag := tail - head; lag > constants.EventQueueSize {
		q.dropped.Add(lag - constants.EventQueueSize)
		head = tail - constants.EventQueueSize
	}

	delivered := 0
	for ; head < tail; head++ {
		s := &q.slots[head&constants.EventBufferMask]
		want := head + 1

		stamp := s.stamp.Load()
		if stamp < want {
			break
		}
		if stamp > want {
			q.dropped.Add(1)
			continue
		}

		ev := s.event
		if s.stamp.Load() != want {
			// Overwritten while copying
			q.dropped.Add(1)
			continue
		}
		fn(ev)
		delivered++
	}

	q.head.Store(head)
	return delivered
}

// Consume returns all pending events in FIFO order, nil when empty
func (q *EventQueue) Consume() []GameEvent {
	var out []GameEvent
	q.Drain(func(ev GameEvent) {
		out = append(out, ev)
	})
	return out
}

// Pending returns an approximate count of unread events
func (q *EventQueue) Pending() int {
	n := q.tail.Load() - q.head.Load()
	if n > constants.EventQueueSize {
		n = constants.EventQueueSize
	}
	return int(n)
}

// Dropped returns how many events were overwritten before the consumer read them
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
