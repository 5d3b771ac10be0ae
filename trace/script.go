// @focus: #trace { script }
package trace

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tidwall/gjson"

	"github.com/lixenwraith/tracer/constants"
	"github.com/lixenwraith/tracer/input"
)

// ErrScript is wrapped by every script parse failure
var ErrScript = errors.New("invalid script")

// Step is one script entry, expanded to Repeat identical frames
type Step struct {
	Repeat int
	Frame  input.Frame
}

// Script is a headless input sequence
//
//	{"dt": "16ms", "forward": [1,0,0], "steps": [{"repeat": 240, "move": [0,1]}, {"rewind": true}]}
type Script struct {
	DT    time.Duration
	Steps []Step
}

// ParseScript decodes a JSON script, dt defaults to the game tick
func ParseScript(data []byte) (Script, error) {
	if !gjson.ValidBytes(data) {
		return Script{}, fmt.Errorf("%w: malformed JSON", ErrScript)
	}
	root := gjson.ParseBytes(data)

	script := Script{DT: constants.GameUpdateInterval}
	if dt := root.Get("dt"); dt.Exists() {
		d, err := parseDuration(dt)
		if err != nil {
			return Script{}, fmt.Errorf("%w: dt: %v", ErrScript, err)
		}
		script.DT = d
	}

	var forward mgl64.Vec3
	if f := root.Get("forward"); f.Exists() {
		v, err := vec3(f)
		if err != nil {
			return Script{}, fmt.Errorf("%w: forward: %v", ErrScript, err)
		}
		forward = v
	}

	steps := root.Get("steps")
	if !steps.IsArray() {
		return Script{}, fmt.Errorf("%w: steps must be an array", ErrScript)
	}

	var parseErr error
	steps.ForEach(func(key, value gjson.Result) bool {
		step, err := parseStep(value, forward)
		if err != nil {
			parseErr = fmt.Errorf("%w: step %d: %v", ErrScript, key.Int(), err)
			return false
		}
		script.Steps = append(script.Steps, step)
		return true
	})
	if parseErr != nil {
		return Script{}, parseErr
	}
	return script, nil
}

func parseStep(v gjson.Result, forward mgl64.Vec3) (Step, error) {
	if !v.IsObject() {
		return Step{}, errors.New("not an object")
	}

	step := Step{Repeat: 1}
	if r := v.Get("repeat"); r.Exists() {
		step.Repeat = int(r.Int())
		if step.Repeat < 1 {
			return Step{}, fmt.Errorf("repeat must be at least 1, got %d", step.Repeat)
		}
	}

	in := &step.Frame.Input
	in.Forward = forward
	if f := v.Get("forward"); f.Exists() {
		fwd, err := vec3(f)
		if err != nil {
			return Step{}, fmt.Errorf("forward: %w", err)
		}
		in.Forward = fwd
	}
	if m := v.Get("move"); m.Exists() {
		move, err := vec2(m)
		if err != nil {
			return Step{}, fmt.Errorf("move: %w", err)
		}
		in.Move = &move
	}
	if l := v.Get("look"); l.Exists() {
		look, err := vec2(l)
		if err != nil {
			return Step{}, fmt.Errorf("look: %w", err)
		}
		in.Look = &look
	}
	in.Dash = v.Get("dash").Bool()
	in.Rewind = v.Get("rewind").Bool()

	step.Frame.Damage = v.Get("damage").Float()
	step.Frame.AmmoSpent = int(v.Get("fire").Int())
	step.Frame.Reload = v.Get("reload").Bool()
	return step, nil
}

// Frames expands steps into one frame per tick
// Only the first frame of a step carries its ability edges
func (s Script) Frames() []input.Frame {
	var frames []input.Frame
	for _, step := range s.Steps {
		for i := 0; i < step.Repeat; i++ {
			f := step.Frame
			if i > 0 {
				f.Input.Dash = false
				f.Input.Rewind = false
				f.Damage = 0
				f.AmmoSpent = 0
				f.Reload = false
			}
			frames = append(frames, f)
		}
	}
	return frames
}

// parseDuration accepts "16ms" strings or integer milliseconds
func parseDuration(v gjson.Result) (time.Duration, error) {
	var d time.Duration
	switch v.Type {
	case gjson.String:
		parsed, err := time.ParseDuration(v.String())
		if err != nil {
			return 0, err
		}
		d = parsed
	case gjson.Number:
		d = time.Duration(v.Float() * float64(time.Millisecond))
	default:
		return 0, fmt.Errorf("unsupported value %s", v.Raw)
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %v", d)
	}
	return d, nil
}

func floats(v gjson.Result, n int) ([]float64, error) {
	if !v.IsArray() {
		return nil, fmt.Errorf("expected array, got %s", v.Raw)
	}
	arr := v.Array()
	if len(arr) != n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(arr))
	}
	out := make([]float64, n)
	for i, c := range arr {
		if c.Type != gjson.Number {
			return nil, fmt.Errorf("component %d is not a number", i)
		}
		out[i] = c.Float()
	}
	return out, nil
}

func vec2(v gjson.Result) (mgl64.Vec2, error) {
	f, err := floats(v, 2)
	if err != nil {
		return mgl64.Vec2{}, err
	}
	return mgl64.Vec2{f[0], f[1]}, nil
}

func vec3(v gjson.Result) (mgl64.Vec3, error) {
	f, err := floats(v, 3)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return mgl64.Vec3{f[0], f[1], f[2]}, nil
}
