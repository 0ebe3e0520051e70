// Package snake implements the trail game: a head moves one cell per
// intent, leaving a trail that is lethal to re-enter.
package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// GameID is the registry identifier.
const GameID = "snake"

var configPath string

// SetConfigPath sets a custom YAML config path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts an Engine to the platform's registry.Game interface.
type Game struct {
	engine  *Engine
	screenW int
	screenH int
}

// New creates an uninitialized Snake game. Call Reset before use.
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
	return "Snake Trail"
}

// Reset loads configuration and builds a fresh engine.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	gameCfg, err := config.LoadSnake(configPath)
	if err != nil {
		return err
	}
	return g.ResetWith(cfg, gameCfg)
}

// ResetWith builds a fresh engine from an explicit configuration.
func (g *Game) ResetWith(cfg core.RuntimeConfig, gameCfg config.SnakeConfig) error {
	engine, err := NewEngine(gameCfg)
	if err != nil {
		return err
	}
	g.engine = engine
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	return nil
}

// Engine exposes the underlying state machine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Apply maps an intent onto the engine.
func (g *Game) Apply(in core.Intent) (core.StepResult, error) {
	if g.engine == nil {
		return core.StepResult{}, fmt.Errorf("snake: game not initialized")
	}

	before := g.engine.Snapshot()

	var err error
	switch in {
	case core.IntentUp:
		err = g.engine.ApplyMove(DirUp)
	case core.IntentDown:
		err = g.engine.ApplyMove(DirDown)
	case core.IntentLeft:
		err = g.engine.ApplyMove(DirLeft)
	case core.IntentRight:
		err = g.engine.ApplyMove(DirRight)
	case core.IntentRestart:
		err = g.engine.Restart()
	default:
		err = fmt.Errorf("snake: %w: %s", core.ErrInvalidIntent, in)
	}

	after := g.engine.Snapshot()
	changed := before.Head != after.Head || before.GameOver != after.GameOver ||
		len(before.Trail) != len(after.Trail)

	return core.StepResult{State: g.State(), Changed: changed}, err
}

// State returns the current game state. The trail game has no score; the
// trail length stands in for it on the scoreboard.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.TrailLen(),
		GameOver: g.engine.GameOver(),
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	if g.engine == nil {
		return "uninitialized\n"
	}
	snap := g.engine.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Grid: %dx%d, Moves: %d\n", snap.Width, snap.Height, snap.Moves)
	fmt.Fprintf(&b, "Head: (%d, %d), Trail: %d\n", snap.Head.X, snap.Head.Y, len(snap.Trail))
	fmt.Fprintf(&b, "State: %s\n", snap.State)
	return b.String()
}
