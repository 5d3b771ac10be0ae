// @focus: #input { tick }
package input

import "github.com/go-gl/mathgl/mgl64"

// TickInput is everything the host supplies for one simulation tick
// Nil Move/Look means the axis had no input this tick
type TickInput struct {
	Move    *mgl64.Vec2
	Look    *mgl64.Vec2
	Dash    bool
	Rewind  bool
	Forward mgl64.Vec3
}

// Frame is one tick of folded events: character input plus collaborator side effects
type Frame struct {
	Input     TickInput
	Damage    float64
	AmmoSpent int
	Reload    bool
}
