package trace

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"log"
	"math"
	"os"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tidwall/gjson"

	"github.com/lixenwraith/tracer/character"
	"github.com/lixenwraith/tracer/components"
	"github.com/lixenwraith/tracer/config"
	"github.com/lixenwraith/tracer/constants"
	"github.com/lixenwraith/tracer/engine"
	"github.com/lixenwraith/tracer/physics"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestParseScript(t *testing.T) {
	data := []byte(`{
		"dt": "10ms",
		"forward": [1, 0, 0],
		"steps": [
			{"repeat": 3, "move": [0, 1], "dash": true},
			{"look": [2, -1], "forward": [0, 1, 0], "damage": 5, "fire": 2, "reload": true},
			{"rewind": true}
		]
	}`)

	s, err := ParseScript(data)
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}
	if s.DT != 10*time.Millisecond {
		t.Errorf("DT = %v", s.DT)
	}
	if len(s.Steps) != 3 {
		t.Fatalf("Expected 3 steps, got %d", len(s.Steps))
	}

	first := s.Steps[0]
	if first.Repeat != 3 || first.Frame.Input.Move == nil || *first.Frame.Input.Move != (mgl64.Vec2{0, 1}) {
		t.Errorf("First step = %+v", first)
	}
	if first.Frame.Input.Forward != (mgl64.Vec3{1, 0, 0}) {
		t.Error("Script forward should be the default")
	}

	second := s.Steps[1].Frame
	if second.Input.Forward != (mgl64.Vec3{0, 1, 0}) || *second.Input.Look != (mgl64.Vec2{2, -1}) {
		t.Errorf("Second step input = %+v", second.Input)
	}
	if second.Damage != 5 || second.AmmoSpent != 2 || !second.Reload {
		t.Errorf("Second step effects = %+v", second)
	}
	if !s.Steps[2].Frame.Input.Rewind {
		t.Error("Third step should rewind")
	}

	frames := s.Frames()
	if len(frames) != 5 {
		t.Fatalf("Expected 5 frames, got %d", len(frames))
	}
	if !frames[0].Input.Dash || frames[1].Input.Dash || frames[2].Input.Dash {
		t.Error("Only the first frame of a repeated step should dash")
	}
	if frames[2].Input.Move == nil {
		t.Error("Axes should repeat across the step")
	}
}

func TestParseScriptDefaults(t *testing.T) {
	s, err := ParseScript([]byte(`{"steps": [{}]}`))
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}
	if s.DT != constants.GameUpdateInterval {
		t.Errorf("Default dt = %v", s.DT)
	}
	if s.Steps[0].Repeat != 1 || s.Steps[0].Frame.Input.Move != nil {
		t.Errorf("Empty step = %+v", s.Steps[0])
	}

	s, err = ParseScript([]byte(`{"dt": 20, "steps": []}`))
	if err != nil || s.DT != 20*time.Millisecond {
		t.Errorf("Numeric dt should be milliseconds, got %v err %v", s.DT, err)
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{"steps": [`},
		{"no steps", `{"dt": "10ms"}`},
		{"bad dt", `{"dt": "soon", "steps": []}`},
		{"negative dt", `{"dt": "-1ms", "steps": []}`},
		{"zero repeat", `{"steps": [{"repeat": 0}]}`},
		{"short move", `{"steps": [{"move": [1]}]}`},
		{"string look", `{"steps": [{"look": ["a", 1]}]}`},
		{"step not object", `{"steps": [3]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScript([]byte(tt.data)); !errors.Is(err, ErrScript) {
				t.Errorf("Expected ErrScript, got %v", err)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	snap := character.Snapshot{
		Tick:          7,
		DashState:     "Active",
		MovementState: "Live",
		Cursor:        -1,
		Charges:       2,
		MaxCharges:    3,
		Cooldown:      250 * time.Millisecond,
		Health:        90,
		Ammo:          12,
		DashElapsed:   48 * time.Millisecond,
		Recorded:      components.HistorySample{Movement: mgl64.Vec2{0, 1}, Rotation: mgl64.Vec2{-2, 0}},
	}
	out := engine.Output{
		Move:         mgl64.Vec2{0, 1},
		GravityScale: 0,
		Impulse:      mgl64.Vec3{3000, 0, 0},
		HasImpulse:   true,
		OverrideXY:   true,
	}
	body := &physics.Body{Position: mgl64.Vec3{1, 2, 3}, Yaw: 45}

	line, err := Encode(snap, out, body)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	checks := map[string]any{
		"tick":             int64(7),
		"state.dash":       "Active",
		"rewind.cursor":    int64(-1),
		"dash.charges":     int64(2),
		"dash.cooldown_ms": int64(250),
		"vitals.health":    90.0,
		"out.move.1":       1.0,
		"out.impulse.0":    3000.0,
		"out.override_xy":  true,
		"body.pos.2":       3.0,
		"body.yaw":         45.0,
		"state.dash_ms":    int64(48),
		"recorded.move.1":  1.0,
		"recorded.look.0":  -2.0,
	}
	for path, want := range checks {
		r := gjson.GetBytes(line, path)
		if !r.Exists() {
			t.Errorf("%s missing from %s", path, line)
			continue
		}
		var got any
		switch want.(type) {
		case int64:
			got = r.Int()
		case float64:
			got = r.Float()
		case string:
			got = r.String()
		case bool:
			got = r.Bool()
		}
		if got != want {
			t.Errorf("%s = %v, want %v", path, got, want)
		}
	}

	if gjson.GetBytes(line, "out.stop_horizontal").Exists() {
		t.Error("stop_horizontal should be omitted when false")
	}

	noBody, err := Encode(snap, engine.Output{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if gjson.GetBytes(noBody, "body").Exists() || gjson.GetBytes(noBody, "out.impulse").Exists() {
		t.Errorf("Optional sections should be omitted: %s", noBody)
	}
}

func TestRunRewindReturnsBody(t *testing.T) {
	cfg := config.Default()
	cfg.History.Size = 30
	c, err := character.New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	script, err := ParseScript([]byte(`{"dt": "16ms", "steps": [
		{"repeat": 15, "move": [0.5, 1]},
		{"repeat": 15, "look": [1, 0]},
		{"rewind": true, "repeat": 30}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	body := &physics.Body{Grounded: true}
	var buf bytes.Buffer
	if err := Run(c, script, body, physics.DefaultParams(), &buf); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	lines := 0
	var last []byte
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		lines++
		last = append(last[:0], sc.Bytes()...)
		if !gjson.ValidBytes(sc.Bytes()) {
			t.Fatalf("Line %d is not valid JSON", lines)
		}
	}
	if lines != 60 {
		t.Errorf("Expected 60 lines, got %d", lines)
	}
	if gjson.GetBytes(last, "state.movement").String() != "Live" {
		t.Errorf("Rewind should be over on the last line: %s", last)
	}

	if p := body.Position; math.Abs(p[0]) > 1e-6 || math.Abs(p[1]) > 1e-6 || math.Abs(p[2]) > 1e-6 {
		t.Errorf("Body should be back at the origin, got %v", body.Position)
	}
	if d := body.Yaw; d > 1e-6 && d < 360-1e-6 {
		t.Errorf("Yaw should be back at 0, got %v", d)
	}
}
