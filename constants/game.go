package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the simulation tick interval
	GameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize must be a power of two
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)

// Character Spawn State
const (
	SpawnHealth = 100.0
	SpawnAmmo   = 40

	// GravityScale is the body gravity multiplier outside of a dash
	GravityScale = 1.0
)
