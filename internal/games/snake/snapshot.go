package snake

import (
	"sort"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning  GameStateType = "running"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is the render-facing view of the engine: everything a renderer
// needs and nothing it could mutate.
type Snapshot struct {
	Width    int
	Height   int
	Head     core.Point
	Trail    []core.Point // Row-major order
	Moves    int
	GameOver bool
	State    GameStateType
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	trail := make([]core.Point, 0, len(e.trail))
	for p := range e.trail {
		trail = append(trail, p)
	}
	sort.Slice(trail, func(i, j int) bool {
		return trail[i].Less(trail[j])
	})

	state := StateRunning
	if e.gameOver {
		state = StateGameOver
	}

	return Snapshot{
		Width:    e.size,
		Height:   e.size,
		Head:     e.head,
		Trail:    trail,
		Moves:    e.moves,
		GameOver: e.gameOver,
		State:    state,
	}
}
