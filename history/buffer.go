// @focus: #history { ring }
package history

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/tracer/components"
)

// ErrIndexOutOfRange is returned by At for an index outside [0, Len())
var ErrIndexOutOfRange = errors.New("history index out of range")

// Buffer is a fixed-length circular log of per-tick samples
// Logical index 0 is the oldest sample, Len()-1 the newest
// Every slot always holds a sample; Record overwrites the oldest
//
// Not safe for concurrent use: one writer and one reader on the tick goroutine
type Buffer struct {
	samples []components.HistorySample
	head    int // Physical index of the oldest sample
}

// New creates a buffer of n slots, each set to seed
func New(n int, seed components.HistorySample) (*Buffer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("history length must be positive, got %d", n)
	}
	b := &Buffer{samples: make([]components.HistorySample, n)}
	b.Reset(seed)
	return b, nil
}

// Len returns the fixed number of samples
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Record discards the oldest sample and appends s as the newest
func (b *Buffer) Record(s components.HistorySample) {
	b.samples[b.head] = s
	b.head++
	if b.head == len(b.samples) {
		b.head = 0
	}
}

// At returns the sample at logical index (0 = oldest)
func (b *Buffer) At(index int) (components.HistorySample, error) {
	n := len(b.samples)
	if index < 0 || index >= n {
		return components.HistorySample{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, n)
	}
	return b.samples[b.physical(index)], nil
}

// Newest returns the most recently recorded sample
func (b *Buffer) Newest() components.HistorySample {
	return b.samples[b.physical(len(b.samples)-1)]
}

// Snapshot copies all samples in oldest to newest order
func (b *Buffer) Snapshot() []components.HistorySample {
	out := make([]components.HistorySample, 0, len(b.samples))
	out = append(out, b.samples[b.head:]...)
	out = append(out, b.samples[:b.head]...)
	return out
}

// Reset overwrites every slot with seed
func (b *Buffer) Reset(seed components.HistorySample) {
	for i := range b.samples {
		b.samples[i] = seed
	}
	b.head = 0
}

// physical maps a logical index to the backing slice
func (b *Buffer) physical(index int) int {
	i := b.head + index
	if i >= len(b.samples) {
		i -= len(b.samples)
	}
	return i
}
