package components

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

func TestHistorySampleNegated(t *testing.T) {
	tests := []struct {
		name   string
		sample HistorySample
	}{
		{"Zero", HistorySample{}},
		{"Forward", HistorySample{Movement: mgl64.Vec2{0, 1}, Health: 100, Ammo: 40}},
		{"Look", HistorySample{Rotation: mgl64.Vec2{2.5, -1}, Health: 55.5, Ammo: 3}},
		{"Mixed", HistorySample{Movement: mgl64.Vec2{-0.5, 0.25}, Rotation: mgl64.Vec2{0.1, 0.2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.sample.Negated()
			if sum := tt.sample.Movement.Add(n.Movement); sum != (mgl64.Vec2{}) {
				t.Errorf("Movement should cancel, got %v", sum)
			}
			if sum := tt.sample.Rotation.Add(n.Rotation); sum != (mgl64.Vec2{}) {
				t.Errorf("Rotation should cancel, got %v", sum)
			}
			if n.Health != tt.sample.Health || n.Ammo != tt.sample.Ammo {
				t.Errorf("Vitals should be unchanged, got health=%f ammo=%d", n.Health, n.Ammo)
			}
		})
	}
}

func TestDashComponentReady(t *testing.T) {
	tests := []struct {
		name     string
		dash     DashComponent
		ready    bool
		charging bool
	}{
		{"Full and cooled", DashComponent{Charges: 3, MaxCharges: 3}, true, false},
		{"No charges", DashComponent{Charges: 0, MaxCharges: 3}, false, true},
		{"No charges negative cooldown", DashComponent{Charges: 0, MaxCharges: 3, Cooldown: -time.Second}, false, true},
		{"Cooling down", DashComponent{Charges: 3, MaxCharges: 3, Cooldown: time.Millisecond}, false, false},
		{"One charge", DashComponent{Charges: 1, MaxCharges: 3}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dash.Ready(); got != tt.ready {
				t.Errorf("Ready() = %v, want %v", got, tt.ready)
			}
			if got := tt.dash.Charging(); got != tt.charging {
				t.Errorf("Charging() = %v, want %v", got, tt.charging)
			}
		})
	}
}

func TestIntentClearKeepsForward(t *testing.T) {
	i := IntentComponent{
		Move:      mgl64.Vec2{1, 1},
		Look:      mgl64.Vec2{2, 2},
		HasMove:   true,
		HasRotate: true,
		Accepting: true,
		Forward:   mgl64.Vec3{0, 1, 0},
	}
	i.Clear()

	if i.HasMove || i.HasRotate || i.Accepting {
		t.Error("Flags should be cleared")
	}
	if i.Move != (mgl64.Vec2{}) || i.Look != (mgl64.Vec2{}) {
		t.Error("Accumulators should be zero")
	}
	if i.Forward != (mgl64.Vec3{0, 1, 0}) {
		t.Errorf("Forward should be kept, got %v", i.Forward)
	}
}
