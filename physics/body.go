// @focus: #physics { body }
package physics

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tracer/constants"
	"github.com/lixenwraith/tracer/engine"
	"github.com/lixenwraith/tracer/vmath"
)

// ImpulseMode defines how impulse is applied to a velocity component
type ImpulseMode uint8

const (
	// ImpulseAdditive adds impulse to existing velocity
	ImpulseAdditive ImpulseMode = iota
	// ImpulseOverride replaces velocity with impulse (launch)
	ImpulseOverride
)

// Params tunes the reference body
type Params struct {
	WalkSpeed float64 // units/sec at full movement axis
	Gravity   float64 // units/sec², scaled by Output.GravityScale
	Friction  float64 // horizontal damping per second while grounded
	LookRate  float64 // degrees per look axis unit
	MaxPitch  float64 // degrees
}

func DefaultParams() Params {
	return Params{
		WalkSpeed: constants.WalkSpeed,
		Gravity:   constants.Gravity,
		Friction:  constants.Friction,
		LookRate:  constants.LookRate,
		MaxPitch:  constants.MaxPitch,
	}
}

// Body is a minimal host character: Z up, yaw 0 faces +X
// Walking moves the position directly, Velocity carries launches and falls
type Body struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Yaw      float64 // degrees, [0, 360)
	Pitch    float64 // degrees, clamped to ±MaxPitch
	Grounded bool
}

// Forward is the camera forward vector including pitch
func (b *Body) Forward() mgl64.Vec3 {
	yaw := mgl64.DegToRad(b.Yaw)
	pitch := mgl64.DegToRad(b.Pitch)
	return mgl64.Vec3{
		math.Cos(pitch) * math.Cos(yaw),
		math.Cos(pitch) * math.Sin(yaw),
		math.Sin(pitch),
	}
}

// Right is the horizontal right vector
func (b *Body) Right() mgl64.Vec3 {
	yaw := mgl64.DegToRad(b.Yaw)
	return mgl64.Vec3{math.Sin(yaw), -math.Cos(yaw), 0}
}

// Apply integrates one tick of simulation output
func (b *Body) Apply(out engine.Output, p Params, dt time.Duration) {
	sec := dt.Seconds()

	// Look
	b.Yaw = math.Mod(b.Yaw+out.Look[0]*p.LookRate, 360)
	if b.Yaw < 0 {
		b.Yaw += 360
	}
	b.Pitch = vmath.Clamp(b.Pitch+out.Look[1]*p.LookRate, -p.MaxPitch, p.MaxPitch)

	// Velocity changes
	if out.StopHorizontal {
		b.Velocity[0], b.Velocity[1] = 0, 0
	}
	if out.HasImpulse {
		xy, z := ImpulseAdditive, ImpulseAdditive
		if out.OverrideXY {
			xy = ImpulseOverride
		}
		if out.OverrideZ {
			z = ImpulseOverride
		}
		b.ApplyImpulse(out.Impulse, xy, z)
	}

	// Walk along the horizontal facing
	if !vmath.IsZero2(out.Move) {
		move := vmath.ClampMagnitude2(out.Move, 1)
		fwd := vmath.Horizontal(b.Forward())
		if l := fwd.Len(); l > vmath.Epsilon {
			fwd = fwd.Mul(1 / l)
		}
		dir := fwd.Mul(move[1]).Add(b.Right().Mul(move[0]))
		b.Position = b.Position.Add(dir.Mul(p.WalkSpeed * sec))
	}

	// Gravity and ground friction
	if !b.Grounded || b.Velocity[2] > 0 {
		b.Velocity[2] -= p.Gravity * out.GravityScale * sec
	}
	if b.Grounded {
		damp := math.Max(0, 1-p.Friction*sec)
		b.Velocity[0] *= damp
		b.Velocity[1] *= damp
	}

	b.Position = b.Position.Add(b.Velocity.Mul(sec))

	if b.Position[2] <= 0 {
		b.Position[2] = 0
		if b.Velocity[2] < 0 {
			b.Velocity[2] = 0
		}
		b.Grounded = true
	} else {
		b.Grounded = false
	}
}

// ApplyImpulse changes velocity per component group
func (b *Body) ApplyImpulse(impulse mgl64.Vec3, xy, z ImpulseMode) {
	switch xy {
	case ImpulseOverride:
		b.Velocity[0], b.Velocity[1] = impulse[0], impulse[1]
	default:
		b.Velocity[0] += impulse[0]
		b.Velocity[1] += impulse[1]
	}
	switch z {
	case ImpulseOverride:
		b.Velocity[2] = impulse[2]
	default:
		b.Velocity[2] += impulse[2]
	}
}
