package constants

import "time"

// Audio Output
const (
	AudioSampleRate   = 44100
	AudioBufferWindow = 100 * time.Millisecond
)

// Whoosh Sound Timing (dash launch)
const (
	WhooshSoundDuration = 180 * time.Millisecond
	WhooshSoundAttack   = 10 * time.Millisecond
	WhooshSoundRelease  = 120 * time.Millisecond
)

// Bell Sound Timing (charge refilled)
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Sweep Sound Timing (rewind start/stop)
const (
	SweepSoundDuration = 400 * time.Millisecond
	SweepSoundAttack   = 20 * time.Millisecond
	SweepSoundRelease  = 150 * time.Millisecond
	SweepLowFreq       = 180.0
	SweepHighFreq      = 720.0
)
