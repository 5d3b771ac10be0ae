// @focus: #render { hud }
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tracer/character"
	"github.com/lixenwraith/tracer/constants"
	"github.com/lixenwraith/tracer/physics"
	"github.com/lixenwraith/tracer/status"
)

// facing arrows indexed by octant, yaw 0 faces screen right
var facing = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// View is everything the HUD draws for one frame
type View struct {
	Snapshot character.Snapshot
	Body     physics.Body
	Muted    bool
	Paused   bool

	// Metrics, when set, supplies the live ability gauges instead of the snapshot
	Metrics *status.Registry
}

// abilityGauges are the values drawn in the dash line and on the body marker
type abilityGauges struct {
	dashing   bool
	rewinding bool
	cooldown  float64
	recharge  float64
	dropped   int64
}

func (v View) gauges() abilityGauges {
	if v.Metrics == nil {
		s := v.Snapshot
		return abilityGauges{
			dashing:   s.DashState == "Active",
			rewinding: s.Rewinding,
			cooldown:  s.Cooldown.Seconds(),
			recharge:  s.RechargeRemaining.Seconds(),
		}
	}
	m := v.Metrics
	return abilityGauges{
		dashing:   m.Bools.Get(status.DashActiveKey).Load(),
		rewinding: m.Bools.Get(status.RewindActiveKey).Load(),
		cooldown:  m.Floats.Get(status.DashCooldownKey).Get(),
		recharge:  m.Floats.Get(status.DashRechargeKey).Get(),
		dropped:   m.Ints.Get(status.InputDropped).Load(),
	}
}

// HUD draws a top-down arena with the body and a status panel
type HUD struct {
	base tcell.Style
}

func NewHUD() *HUD {
	return &HUD{base: tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)}
}

// Draw renders v to screen; the caller calls Show
func (h *HUD) Draw(screen tcell.Screen, v View) {
	width, height := screen.Size()
	screen.Fill(' ', h.base)

	g := v.gauges()
	arenaHeight := height - constants.HUDHeight
	if arenaHeight > 0 {
		h.drawArena(screen, v, g, width, arenaHeight)
	}
	if height >= constants.HUDHeight {
		h.drawPanel(screen, v, g, width, arenaHeight)
	}
}

// drawArena maps world X to columns and world Y to rows, origin at the arena center
func (h *HUD) drawArena(screen tcell.Screen, v View, g abilityGauges, width, height int) {
	cx, cy := width/2, height/2
	dim := h.base.Foreground(RgbDim)
	screen.SetContent(cx, cy, '+', nil, dim)

	col := cx + int(math.Round(v.Body.Position[0]/constants.ArenaScale))
	row := cy - int(math.Round(v.Body.Position[1]/constants.ArenaScale))
	if col < 0 || col >= width || row < 0 || row >= height {
		return
	}

	marker, color := constants.MarkerBody, RgbBody
	switch {
	case g.rewinding:
		marker, color = constants.MarkerRewind, RgbRewind
	case g.dashing:
		marker, color = constants.MarkerDashing, RgbDashing
	}
	screen.SetContent(col, row, marker, nil, h.base.Foreground(color).Bold(true))

	if col+1 < width {
		screen.SetContent(col+1, row, FacingRune(v.Body.Yaw), nil, h.base.Foreground(color))
	}
}

func (h *HUD) drawPanel(screen tcell.Screen, v View, g abilityGauges, width, top int) {
	s := v.Snapshot
	y := top

	// Line 1: dash charges and timers
	x := h.text(screen, 0, y, "DASH ", h.base)
	for i := 0; i < s.MaxCharges; i++ {
		r, c := constants.MarkerCharge, RgbChargeFull
		if i >= s.Charges {
			r, c = constants.MarkerNoCharge, RgbChargeUsed
		}
		screen.SetContent(x, y, r, nil, h.base.Foreground(c))
		x++
	}
	h.text(screen, x, y, fmt.Sprintf("  cd %.1fs  recharge %.1fs  [%s]",
		g.cooldown, g.recharge, s.DashState), h.base)

	// Line 2: vitals and movement gate
	y++
	x = h.text(screen, 0, y, fmt.Sprintf("HP %-5.0f ", s.Health), h.base.Foreground(RgbHealth))
	x = h.text(screen, x, y, fmt.Sprintf("AMMO %-3d  ", s.Ammo), h.base)
	x = h.text(screen, x, y, fmt.Sprintf("MOVE %s %.1fs", s.MovementState, s.MovementElapsed.Seconds()), h.base)
	if g.dropped > 0 {
		h.text(screen, x, y, fmt.Sprintf("  dropped %d", g.dropped), h.base.Foreground(RgbDim))
	}

	// Line 3: rewind progress bar over the history length
	y++
	if s.Rewinding && s.HistoryLen > 0 {
		label := fmt.Sprintf("REWIND %3d ", s.Cursor+1)
		x = h.text(screen, 0, y, label, h.base.Foreground(RgbRewind))
		barWidth := width - x
		filled := 0
		if barWidth > 0 {
			filled = (s.Cursor + 1) * barWidth / s.HistoryLen
		}
		for i := 0; i < filled; i++ {
			screen.SetContent(x+i, y, '█', nil, h.base.Foreground(RgbRewind))
		}
	} else {
		h.text(screen, 0, y, fmt.Sprintf("TICK %d  POS %.0f,%.0f,%.0f", s.Tick,
			v.Body.Position[0], v.Body.Position[1], v.Body.Position[2]), h.base.Foreground(RgbDim))
	}

	// Line 4: help and audio indicator
	y++
	x = h.text(screen, 0, y, "WASD move  arrows look  1 dash  2 rewind  h/f/r  p pause  q quit ", h.base.Foreground(RgbDim))
	audio, color := " SND ", RgbAudioUnmuted
	if v.Muted {
		color = RgbAudioMuted
	}
	x = h.text(screen, x, y, audio, h.base.Background(color).Foreground(tcell.ColorBlack))
	if v.Paused {
		h.text(screen, x+1, y, "PAUSED", h.base.Bold(true))
	}
}

// text writes s from x and returns the column after it
func (h *HUD) text(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// FacingRune picks the arrow closest to yaw in degrees
func FacingRune(yaw float64) rune {
	octant := int(math.Round(math.Mod(yaw, 360)/45)) % 8
	if octant < 0 {
		octant += 8
	}
	return facing[octant]
}
