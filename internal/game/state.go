// Package game provides the tick loop, session state and the terminal driver.
package game

// State is the lifecycle state of a session's loop.
type State int

const (
	// StateStopped is the initial and terminal state.
	StateStopped State = iota
	// StateRunning means frames are being consumed and ticks performed.
	StateRunning
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Outcome records why a session stopped.
type Outcome int

const (
	// OutcomeNone means the session has not stopped yet.
	OutcomeNone Outcome = iota
	// OutcomeCollision means the snake hit a wall or itself.
	OutcomeCollision
	// OutcomeBoardFull means no empty cell remained for food.
	OutcomeBoardFull
	// OutcomeQuit means the player or the caller ended the session.
	OutcomeQuit
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCollision:
		return "collision"
	case OutcomeBoardFull:
		return "board_full"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Message returns the text shown to the player for the outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeCollision:
		return "Game over!"
	case OutcomeBoardFull:
		return "Board full - you win!"
	case OutcomeQuit:
		return "Bye."
	default:
		return ""
	}
}

// Status is the summary handed to the renderer after each render pass.
type Status struct {
	SessionID string
	Score     int
	Length    int
	State     State
	Outcome   Outcome
}
