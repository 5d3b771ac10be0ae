package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tracer/character"
	"github.com/lixenwraith/tracer/config"
	"github.com/lixenwraith/tracer/constants"
	"github.com/lixenwraith/tracer/input"
	"github.com/lixenwraith/tracer/physics"
	"github.com/lixenwraith/tracer/status"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func readRow(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func baseSnapshot() character.Snapshot {
	return character.Snapshot{
		DashState:     "Idle",
		MovementState: "Live",
		Cursor:        -1,
		HistoryLen:    240,
		Charges:       2,
		MaxCharges:    3,
		Cooldown:      500 * time.Millisecond,
		Health:        100,
		Ammo:          40,
	}
}

func TestHUDPanel(t *testing.T) {
	screen := newScreen(t, 80, 24)
	NewHUD().Draw(screen, View{Snapshot: baseSnapshot()})

	top := 24 - constants.HUDHeight
	line1 := readRow(screen, top)
	if !strings.HasPrefix(line1, "DASH ■■□") {
		t.Errorf("Charge row = %q", line1)
	}
	if !strings.Contains(line1, "cd 0.5s") || !strings.Contains(line1, "[Idle]") {
		t.Errorf("Timer text missing: %q", line1)
	}

	line2 := readRow(screen, top+1)
	if !strings.Contains(line2, "HP 100") || !strings.Contains(line2, "AMMO 40") || !strings.Contains(line2, "MOVE Live") {
		t.Errorf("Vitals row = %q", line2)
	}
}

func TestHUDBodyMarker(t *testing.T) {
	screen := newScreen(t, 80, 24)
	body := physics.Body{Position: mgl64.Vec3{3 * constants.ArenaScale, 2 * constants.ArenaScale, 0}}

	NewHUD().Draw(screen, View{Snapshot: baseSnapshot(), Body: body})

	arenaHeight := 24 - constants.HUDHeight
	col, row := 40+3, arenaHeight/2-2
	if r, _, _, _ := screen.GetContent(col, row); r != constants.MarkerBody {
		t.Errorf("Expected body marker at %d,%d, got %q", col, row, r)
	}
	if r, _, _, _ := screen.GetContent(col+1, row); r != '→' {
		t.Errorf("Expected facing arrow, got %q", r)
	}
}

func TestHUDRewindState(t *testing.T) {
	screen := newScreen(t, 80, 24)
	snap := baseSnapshot()
	snap.Rewinding = true
	snap.MovementState = "Rewinding"
	snap.Cursor = 119

	NewHUD().Draw(screen, View{Snapshot: snap})

	arenaHeight := 24 - constants.HUDHeight
	if r, _, _, _ := screen.GetContent(40, arenaHeight/2); r != constants.MarkerRewind {
		t.Errorf("Expected rewind marker, got %q", r)
	}

	bar := readRow(screen, arenaHeight+2)
	if !strings.HasPrefix(bar, "REWIND 120") {
		t.Errorf("Rewind row = %q", bar)
	}
	filled := strings.Count(bar, "█")
	barWidth := 80 - len("REWIND 120 ")
	if want := 120 * barWidth / 240; filled != want {
		t.Errorf("Expected %d filled cells, got %d", want, filled)
	}
}

func TestHUDOffscreenBodySkipped(t *testing.T) {
	screen := newScreen(t, 20, 10)
	body := physics.Body{Position: mgl64.Vec3{1e6, 0, 0}}

	// Must not panic or wrap
	NewHUD().Draw(screen, View{Snapshot: baseSnapshot(), Body: body})
}

func TestFacingRune(t *testing.T) {
	tests := []struct {
		yaw  float64
		want rune
	}{
		{0, '→'},
		{90, '↑'},
		{180, '←'},
		{270, '↓'},
		{350, '→'},
		{-45, '↘'},
		{44, '↗'},
	}
	for _, tt := range tests {
		if got := FacingRune(tt.yaw); got != tt.want {
			t.Errorf("FacingRune(%v) = %q, want %q", tt.yaw, got, tt.want)
		}
	}
}

func TestHUDReadsRegistryGauges(t *testing.T) {
	reg := status.NewRegistry()
	c, err := character.New(config.Default(), nil, character.WithRegistry(reg))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	c.Tick(constants.GameUpdateInterval, input.TickInput{Dash: true, Forward: mgl64.Vec3{1, 0, 0}})
	reg.Ints.Get(status.InputDropped).Store(2)

	screen := newScreen(t, 80, 24)
	NewHUD().Draw(screen, View{Snapshot: c.Snapshot(), Metrics: reg})

	arenaHeight := 24 - constants.HUDHeight
	if r, _, _, _ := screen.GetContent(40, arenaHeight/2); r != constants.MarkerDashing {
		t.Errorf("Expected dashing marker from dash.active gauge, got %q", r)
	}

	line1 := readRow(screen, arenaHeight)
	wantCD := fmt.Sprintf("cd %.1fs", reg.Floats.Get(status.DashCooldownKey).Get())
	if !strings.Contains(line1, wantCD) || !strings.Contains(line1, "[Active]") {
		t.Errorf("Dash row = %q, want %q", line1, wantCD)
	}
	if line2 := readRow(screen, arenaHeight+1); !strings.Contains(line2, "dropped 2") {
		t.Errorf("Vitals row should report dropped input: %q", line2)
	}
}
