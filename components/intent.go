// @focus: #input { intent }
package components

import "github.com/go-gl/mathgl/mgl64"

// IntentComponent accumulates the live input accepted during one tick
// HasMove/HasRotate are cleared every tick so an idle tick records zero vectors
type IntentComponent struct {
	Move      mgl64.Vec2
	Look      mgl64.Vec2
	HasMove   bool
	HasRotate bool

	// Accepting is latched after ability input, false while the movement gate is closed
	Accepting bool

	// Forward is the last camera forward vector supplied by the host
	Forward mgl64.Vec3
}

// Clear resets the per-tick accumulators, Forward is kept
func (i *IntentComponent) Clear() {
	i.Move = mgl64.Vec2{}
	i.Look = mgl64.Vec2{}
	i.HasMove = false
	i.HasRotate = false
	i.Accepting = false
}
