package core

import "errors"

// Sentinel errors shared by every game.
var (
	// ErrInvalidIntent is returned when a game receives an intent outside
	// the set it understands.
	ErrInvalidIntent = errors.New("invalid intent")

	// ErrNotGameOver is returned by Restart while a game is still running.
	ErrNotGameOver = errors.New("restart is only allowed after game over")
)

// Intent is a single discrete command that advances a game by one turn.
// Games work with intents rather than raw key presses.
type Intent int

const (
	IntentNone    Intent = iota
	IntentUp             // W, Up arrow - move up (Snake)
	IntentDown           // S, Down arrow - move down (Snake)
	IntentLeft           // A, Left arrow - move left (Snake, Tetris)
	IntentRight          // D, Right arrow - move right (Snake, Tetris)
	IntentRotate         // X, Up arrow in Tetris - rotate clockwise
	IntentStep           // Space - advance the falling piece one row
	IntentRestart        // R - restart after game over
	IntentConfirm        // Enter - confirm selection in menu
	IntentBack           // B, Escape - go back to menu
	IntentQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentUp:
		return "Up"
	case IntentDown:
		return "Down"
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	case IntentRotate:
		return "Rotate"
	case IntentStep:
		return "Step"
	case IntentRestart:
		return "Restart"
	case IntentConfirm:
		return "Confirm"
	case IntentBack:
		return "Back"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsPlatform reports whether the intent is handled by the platform
// (menus, quitting) and never reaches a game.
func (i Intent) IsPlatform() bool {
	return i == IntentConfirm || i == IntentBack || i == IntentQuit
}
