package engine

import "github.com/go-gl/mathgl/mgl64"

// Output is the per-tick result handed to the host body
// Move and Look are axis inputs in the same units as live input
type Output struct {
	Move mgl64.Vec2
	Look mgl64.Vec2

	// GravityScale persists across ticks until a dash changes it
	GravityScale float64

	// Impulse is a velocity change; OverrideXY/OverrideZ replace the matching velocity components instead of adding
	Impulse    mgl64.Vec3
	HasImpulse bool
	OverrideXY bool
	OverrideZ  bool

	// StopHorizontal asks the host to zero horizontal velocity before applying Impulse
	StopHorizontal bool
}

// clearTransient resets everything except the persistent gravity scale
func (o *Output) clearTransient() {
	*o = Output{GravityScale: o.GravityScale}
}
