package snake

import (
	"fmt"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Direction is one of the four unit moves.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Vector returns the unit offset for the direction.
func (d Direction) Vector() (core.Point, bool) {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}, true
	case DirDown:
		return core.Point{X: 0, Y: 1}, true
	case DirLeft:
		return core.Point{X: -1, Y: 0}, true
	case DirRight:
		return core.Point{X: 1, Y: 0}, true
	default:
		return core.Point{}, false
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Engine is the trail game state machine. The head leaves a lethal trail
// behind it; leaving the grid or re-entering the trail ends the game.
// An Engine belongs to a single session and is not safe for concurrent use.
type Engine struct {
	size     int
	head     core.Point
	trail    map[core.Point]struct{}
	gameOver bool
	moves    int // Successful moves since the last restart
}

// NewEngine creates an engine in its initial configuration.
func NewEngine(cfg config.SnakeConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	e := &Engine{size: cfg.Grid.Size}
	e.reset()
	return e, nil
}

// reset puts the head at the grid center with an empty trail.
func (e *Engine) reset() {
	e.head = core.Point{X: e.size / 2, Y: e.size / 2}
	e.trail = make(map[core.Point]struct{})
	e.gameOver = false
	e.moves = 0
}

// ApplyMove advances the head one cell. Moves after game over are ignored.
// A wall hit ends the game with head and trail untouched; so does moving
// onto the trail, which includes the cell the head just left.
func (e *Engine) ApplyMove(d Direction) error {
	delta, ok := d.Vector()
	if !ok {
		return fmt.Errorf("snake: %w: direction %d", core.ErrInvalidIntent, int(d))
	}
	if e.gameOver {
		return nil
	}

	next := e.head.Add(delta)
	if !e.inBounds(next) {
		e.gameOver = true
		return nil
	}
	if e.InTrail(next) {
		e.gameOver = true
		return nil
	}

	e.trail[e.head] = struct{}{}
	e.head = next
	e.moves++
	return nil
}

// Restart returns a finished game to its initial configuration.
func (e *Engine) Restart() error {
	if !e.gameOver {
		return fmt.Errorf("snake: %w", core.ErrNotGameOver)
	}
	e.reset()
	return nil
}

func (e *Engine) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < e.size && p.Y >= 0 && p.Y < e.size
}

// InTrail reports whether p was previously occupied by the head.
func (e *Engine) InTrail(p core.Point) bool {
	_, ok := e.trail[p]
	return ok
}

// Head returns the current head position.
func (e *Engine) Head() core.Point { return e.head }

// TrailLen returns the number of trail cells.
func (e *Engine) TrailLen() int { return len(e.trail) }

// Size returns the grid side length.
func (e *Engine) Size() int { return e.size }

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool { return e.gameOver }

// Moves returns the number of successful moves since the last restart.
func (e *Engine) Moves() int { return e.moves }
