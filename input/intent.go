package input

import "github.com/go-gl/mathgl/mgl64"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents, handled by the driver
	IntentQuit        // q, Ctrl+C
	IntentToggleMute  // m
	IntentTogglePause // p

	// Character intents, forwarded to the event queue
	IntentMove   // WASD
	IntentLook   // arrows
	IntentDash   // 1, space
	IntentRewind // 2, e
	IntentDamage // h
	IntentFire   // f
	IntentReload // r
)

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type IntentType
	Axis mgl64.Vec2 // Move/Look axis sample
}

// IsSystem reports whether the driver handles the intent instead of the character
func (t IntentType) IsSystem() bool {
	return t >= IntentQuit && t <= IntentTogglePause
}
