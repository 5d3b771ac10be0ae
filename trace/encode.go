package trace

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tidwall/sjson"

	"github.com/lixenwraith/tracer/character"
	"github.com/lixenwraith/tracer/engine"
	"github.com/lixenwraith/tracer/physics"
)

// Encode renders one tick as a single JSON object, body may be nil
func Encode(snap character.Snapshot, out engine.Output, body *physics.Body) ([]byte, error) {
	data := []byte(`{}`)

	set := func(path string, value any) error {
		var err error
		data, err = sjson.SetBytes(data, path, value)
		return err
	}

	fields := []struct {
		path  string
		value any
	}{
		{"tick", snap.Tick},
		{"id", snap.ID.String()},
		{"state.dash", snap.DashState},
		{"state.movement", snap.MovementState},
		{"state.dash_ms", snap.DashElapsed.Milliseconds()},
		{"state.movement_ms", snap.MovementElapsed.Milliseconds()},
		{"rewind.cursor", snap.Cursor},
		{"dash.charges", snap.Charges},
		{"dash.max", snap.MaxCharges},
		{"dash.cooldown_ms", snap.Cooldown.Milliseconds()},
		{"dash.recharge_ms", snap.RechargeRemaining.Milliseconds()},
		{"vitals.health", snap.Health},
		{"vitals.ammo", snap.Ammo},
		{"recorded.move", vec2Slice(snap.Recorded.Movement)},
		{"recorded.look", vec2Slice(snap.Recorded.Rotation)},
		{"out.move", vec2Slice(out.Move)},
		{"out.look", vec2Slice(out.Look)},
		{"out.gravity", out.GravityScale},
	}
	for _, f := range fields {
		if err := set(f.path, f.value); err != nil {
			return nil, err
		}
	}

	if out.HasImpulse {
		if err := set("out.impulse", vec3Slice(out.Impulse)); err != nil {
			return nil, err
		}
		if err := set("out.override_xy", out.OverrideXY); err != nil {
			return nil, err
		}
		if err := set("out.override_z", out.OverrideZ); err != nil {
			return nil, err
		}
	}
	if out.StopHorizontal {
		if err := set("out.stop_horizontal", true); err != nil {
			return nil, err
		}
	}

	if body != nil {
		if err := set("body.pos", vec3Slice(body.Position)); err != nil {
			return nil, err
		}
		if err := set("body.vel", vec3Slice(body.Velocity)); err != nil {
			return nil, err
		}
		if err := set("body.yaw", body.Yaw); err != nil {
			return nil, err
		}
		if err := set("body.pitch", body.Pitch); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func vec2Slice(v mgl64.Vec2) []float64 { return []float64{v[0], v[1]} }
func vec3Slice(v mgl64.Vec3) []float64 { return []float64{v[0], v[1], v[2]} }
