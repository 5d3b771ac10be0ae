// @focus: #ability { dash }
package components

import "time"

// DashComponent tracks the dash ability charges and timers
// Active/Idle lives in the FSM, this holds only counters
type DashComponent struct {
	Charges    int
	MaxCharges int

	// Cooldown is the time left before another activation is allowed
	Cooldown time.Duration

	// RechargeRemaining counts down to the next refill while Charges < MaxCharges
	RechargeRemaining time.Duration

	// Remaining is the time left in the current dash
	Remaining time.Duration
}

// Charging reports whether the recharge timer is running
func (d DashComponent) Charging() bool {
	return d.Charges < d.MaxCharges
}

// Ready reports whether an activation would be accepted by the counters alone
func (d DashComponent) Ready() bool {
	return d.Cooldown <= 0 && d.Charges >= 1
}
