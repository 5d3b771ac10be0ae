// @focus: #history { sample }
package components

import "github.com/go-gl/mathgl/mgl64"

// HistorySample is one tick of recorded character state
// Movement and Rotation are the input axes accepted that tick, not accumulated deltas
type HistorySample struct {
	Movement mgl64.Vec2 // X = right, Y = forward
	Rotation mgl64.Vec2 // X = yaw, Y = pitch
	Health   float64
	Ammo     int
}

// Negated returns the sample with movement and rotation inverted
// Health and Ammo are snapshots and are carried unchanged
func (s HistorySample) Negated() HistorySample {
	return HistorySample{
		Movement: mgl64.Vec2{-s.Movement[0], -s.Movement[1]},
		Rotation: mgl64.Vec2{-s.Rotation[0], -s.Rotation[1]},
		Health:   s.Health,
		Ammo:     s.Ammo,
	}
}
