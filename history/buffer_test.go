package history

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/tracer/components"
)

func sampleN(i int) components.HistorySample {
	return components.HistorySample{
		Movement: mgl64.Vec2{float64(i), 0},
		Rotation: mgl64.Vec2{0, float64(-i)},
		Health:   float64(100 - i),
		Ammo:     i,
	}
}

func TestNewRejectsNonPositiveLength(t *testing.T) {
	for _, n := range []int{0, -1, -240} {
		if _, err := New(n, components.HistorySample{}); err == nil {
			t.Errorf("New(%d) should fail", n)
		}
	}
}

// TestSeedFillsEverySlot verifies spawn state occupies all N slots
func TestSeedFillsEverySlot(t *testing.T) {
	seed := components.HistorySample{Health: 100, Ammo: 40}
	b, err := New(240, seed)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < b.Len(); i++ {
		s, err := b.At(i)
		if err != nil {
			t.Fatalf("At(%d) failed: %v", i, err)
		}
		if s != seed {
			t.Fatalf("Slot %d should hold seed, got %+v", i, s)
		}
	}
}

// TestRecordKeepsLength verifies Record never changes the buffer length
func TestRecordKeepsLength(t *testing.T) {
	b, _ := New(16, components.HistorySample{})

	for i := 0; i < 100; i++ {
		b.Record(sampleN(i))
		if b.Len() != 16 {
			t.Fatalf("Length changed to %d after %d records", b.Len(), i+1)
		}
		if len(b.Snapshot()) != 16 {
			t.Fatalf("Snapshot length changed after %d records", i+1)
		}
	}
}

// TestRecordOrdering verifies oldest-to-newest logical order across wraparound
func TestRecordOrdering(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		records int
	}{
		{"Partial fill", 8, 3},
		{"Exact fill", 8, 8},
		{"One wrap", 8, 11},
		{"Many wraps", 8, 83},
		{"Single slot", 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := components.HistorySample{Health: -1}
			b, _ := New(tt.size, seed)
			for i := 0; i < tt.records; i++ {
				b.Record(sampleN(i))
			}

			for idx := 0; idx < tt.size; idx++ {
				got, err := b.At(idx)
				if err != nil {
					t.Fatalf("At(%d) failed: %v", idx, err)
				}

				// Logical idx corresponds to record number records-size+idx
				n := tt.records - tt.size + idx
				var want components.HistorySample
				if n < 0 {
					want = seed
				} else {
					want = sampleN(n)
				}
				if got != want {
					t.Errorf("At(%d) = %+v, want %+v", idx, got, want)
				}
			}

			if tt.records > 0 && b.Newest() != sampleN(tt.records-1) {
				t.Errorf("Newest() = %+v, want record %d", b.Newest(), tt.records-1)
			}
		})
	}
}

func TestAtOutOfRange(t *testing.T) {
	b, _ := New(240, components.HistorySample{})

	for _, idx := range []int{-1, 240, 241, -240} {
		_, err := b.At(idx)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
	}

	if _, err := b.At(0); err != nil {
		t.Errorf("At(0) should succeed, got %v", err)
	}
	if _, err := b.At(239); err != nil {
		t.Errorf("At(239) should succeed, got %v", err)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	b, _ := New(4, components.HistorySample{})
	for i := 0; i < 6; i++ {
		b.Record(sampleN(i))
	}

	snap := b.Snapshot()
	snap[0].Ammo = 9999

	first, _ := b.At(0)
	if first.Ammo == 9999 {
		t.Error("Snapshot should not alias the buffer")
	}
	if snap[3] != sampleN(5) {
		t.Errorf("Snapshot tail should be newest, got %+v", snap[3])
	}
}

func TestReset(t *testing.T) {
	b, _ := New(4, components.HistorySample{})
	for i := 0; i < 7; i++ {
		b.Record(sampleN(i))
	}

	seed := components.HistorySample{Health: 42, Ammo: 7}
	b.Reset(seed)
	for i := 0; i < b.Len(); i++ {
		if s, _ := b.At(i); s != seed {
			t.Errorf("Slot %d should be seed after Reset, got %+v", i, s)
		}
	}
}
