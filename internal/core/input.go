package core

// Direction is a horizontal paddle movement direction.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Sign returns -1 for left and +1 for right.
func (d Direction) Sign() int {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

// Action represents a semantic host action, abstracted from physical key presses.
// This allows hosts to share bindings without knowing about each other.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A, H - move paddle left
	ActionRight        // Right arrow, D, L - move paddle right
	ActionReset        // R - discard the current game and start over
	ActionAck          // Enter, Space - acknowledge the game over dialog
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionReset:
		return "Reset"
	case ActionAck:
		return "Ack"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the paddle direction for a movement action.
// The second result is false for actions that do not move the paddle.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionLeft:
		return DirectionLeft, true
	case ActionRight:
		return DirectionRight, true
	default:
		return 0, false
	}
}
