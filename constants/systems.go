package constants

// System Priorities (lower runs first)
const (
	// PriorityDash advances cooldown and recharge after the FSM update
	PriorityDash = 10

	// PriorityRecorder must run last so the sample sees the final intent of the tick
	PriorityRecorder = 100
)
