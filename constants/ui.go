package constants

// Key Mapping
const (
	// LookStep is the look axis value produced by one arrow key press
	LookStep = 5.0
)

// HUD Layout
const (
	HUDHeight = 4

	// ArenaScale is world units per terminal column
	ArenaScale = 100.0

	MarkerBody     = '@'
	MarkerDashing  = '*'
	MarkerRewind   = '<'
	MarkerCharge   = '■'
	MarkerNoCharge = '□'
)

// Reference Body
const (
	WalkSpeed = 600.0
	Gravity   = 980.0
	Friction  = 8.0
	LookRate  = 1.0
	MaxPitch  = 89.0

	// DebugDamage is the health removed by the damage key
	DebugDamage = 10.0
)
