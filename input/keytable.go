package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tracer/constants"
)

// KeyEntry describes a key's intent without function pointers
type KeyEntry struct {
	Intent IntentType
	Axis   mgl64.Vec2
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, escape)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, looked up lower-cased
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
// Movement Y is forward, X is right; look X is yaw, Y is pitch
func DefaultKeyTable() *KeyTable {
	step := constants.LookStep
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyUp:     {Intent: IntentLook, Axis: mgl64.Vec2{0, step}},
			tcell.KeyDown:   {Intent: IntentLook, Axis: mgl64.Vec2{0, -step}},
			tcell.KeyLeft:   {Intent: IntentLook, Axis: mgl64.Vec2{-step, 0}},
			tcell.KeyRight:  {Intent: IntentLook, Axis: mgl64.Vec2{step, 0}},
		},
		Runes: map[rune]KeyEntry{
			'w': {Intent: IntentMove, Axis: mgl64.Vec2{0, 1}},
			's': {Intent: IntentMove, Axis: mgl64.Vec2{0, -1}},
			'a': {Intent: IntentMove, Axis: mgl64.Vec2{-1, 0}},
			'd': {Intent: IntentMove, Axis: mgl64.Vec2{1, 0}},

			'1': {Intent: IntentDash},
			' ': {Intent: IntentDash},
			'2': {Intent: IntentRewind},
			'e': {Intent: IntentRewind},

			'h': {Intent: IntentDamage},
			'f': {Intent: IntentFire},
			'r': {Intent: IntentReload},

			'q': {Intent: IntentQuit},
			'm': {Intent: IntentToggleMute},
			'p': {Intent: IntentTogglePause},
		},
	}
}

// Lookup resolves a key event, false for unbound keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		entry, ok := kt.Runes[r]
		return entry, ok
	}
	entry, ok := kt.SpecialKeys[ev.Key()]
	return entry, ok
}
