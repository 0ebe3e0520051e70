// Package tetris implements a turn-based Tetris: seven tetrominoes,
// clockwise rotation without kicks, and line clears worth a fixed number
// of points per row. Pieces fall only when the player steps them.
package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// GameID is the registry identifier.
const GameID = "tetris"

var configPath string

// SetConfigPath sets a custom YAML config path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts an Engine to the platform's registry.Game interface.
type Game struct {
	engine *Engine
}

// New creates an uninitialized Tetris game. Call Reset before use.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset loads configuration and builds a fresh engine whose shape
// sequence is derived from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	gameCfg, err := config.LoadTetris(configPath)
	if err != nil {
		return err
	}
	return g.ResetWith(gameCfg, NewRandomPicker(cfg.Seed))
}

// ResetWith builds a fresh engine from an explicit configuration and picker.
func (g *Game) ResetWith(gameCfg config.TetrisConfig, picker ShapePicker) error {
	engine, err := NewEngine(gameCfg, picker)
	if err != nil {
		return err
	}
	g.engine = engine
	return nil
}

// Engine exposes the underlying state machine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Apply maps an intent onto the engine.
func (g *Game) Apply(in core.Intent) (core.StepResult, error) {
	if g.engine == nil {
		return core.StepResult{}, fmt.Errorf("tetris: game not initialized")
	}

	var (
		changed bool
		err     error
	)
	switch in {
	case core.IntentLeft:
		changed = g.engine.MoveLeft()
	case core.IntentRight:
		changed = g.engine.MoveRight()
	case core.IntentRotate:
		changed = g.engine.Rotate()
	case core.IntentStep:
		changed = g.engine.Step()
	case core.IntentRestart:
		err = g.engine.Restart()
		changed = err == nil
	default:
		err = fmt.Errorf("tetris: %w: %s", core.ErrInvalidIntent, in)
	}

	return core.StepResult{State: g.State(), Changed: changed}, err
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.GameOver(),
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	if g.engine == nil {
		return "uninitialized\n"
	}
	snap := g.engine.Snapshot()
	active := g.engine.Active()
	var b strings.Builder
	fmt.Fprintf(&b, "Board: %dx%d, Score: %d, Lines: %d, Pieces: %d\n",
		snap.Cols, snap.Rows, snap.Score, snap.Lines, snap.Pieces)
	fmt.Fprintf(&b, "Active: %s at (%d, %d)\n", active.Shape, active.X, active.Y)
	fmt.Fprintf(&b, "State: %s\n", snap.State)
	return b.String()
}
