// @focus: #ability { rewind }
package components

// RewindCursorIdle is the cursor value outside of a rewind and after completion
const RewindCursorIdle = -1

// RewindComponent tracks replay progress through the history buffer
type RewindComponent struct {
	// Cursor counts down from history length-1 to RewindCursorIdle
	Cursor int

	// Replayed is the number of samples replayed by the current or last rewind
	Replayed int
}
