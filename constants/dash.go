package constants

import "time"

// Dash Charges
const (
	DashMaxCharges = 3

	// DashRechargeInterval is the time to refill a single charge
	DashRechargeInterval = 3 * time.Second
)

// Dash Timing
const (
	// DashCooldown is the minimum time between two activations
	DashCooldown = 1 * time.Second

	// DashDuration is how long gravity stays suppressed after the launch
	DashDuration = 200 * time.Millisecond
)

// Dash Forces
const (
	// DashLaunchX, DashLaunchY, DashLaunchZ scale the camera forward vector component-wise
	DashLaunchX = 3000.0
	DashLaunchY = 3000.0
	DashLaunchZ = 0.0

	// DashDriftInput is the forward movement axis value injected every active tick
	DashDriftInput = 1.0

	// DashEndDrop is the downward speed applied when the dash ends
	DashEndDrop = 300.0
)
