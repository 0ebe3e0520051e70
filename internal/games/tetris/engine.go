package tetris

import (
	"fmt"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Piece is the active, still movable tetromino.
type Piece struct {
	Shape  ShapeID
	Matrix Matrix // Current rotation
	X, Y   int    // Top-left anchor on the board
}

// Engine is the Tetris state machine. Pieces fall only on Step; there is
// no timer. An Engine belongs to a single session and is not safe for
// concurrent use.
type Engine struct {
	cfg    config.TetrisConfig
	board  *Board
	picker ShapePicker
	active Piece

	score    int
	lines    int // Rows cleared since the last restart
	pieces   int // Pieces spawned since the last restart
	gameOver bool
}

// NewEngine validates cfg, creates an empty board and spawns the first
// piece. The configuration must let every template spawn on an empty
// board, so a restart can never end immediately.
func NewEngine(cfg config.TetrisConfig, picker ShapePicker) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tetris: %w", err)
	}
	if picker == nil {
		return nil, fmt.Errorf("tetris: nil shape picker")
	}

	empty := NewBoard(cfg.Board.Columns, cfg.Board.Rows)
	for s := ShapeID(0); s < ShapeCount; s++ {
		if empty.Collides(templates[s], cfg.Spawn.X, cfg.Spawn.Y) {
			return nil, fmt.Errorf("tetris: shape %s does not fit at spawn (%d,%d) on a %dx%d board: %w",
				s, cfg.Spawn.X, cfg.Spawn.Y, cfg.Board.Columns, cfg.Board.Rows, config.ErrInvalidConfig)
		}
	}

	e := &Engine{
		cfg:    cfg,
		board:  empty,
		picker: picker,
	}
	e.spawnNew()
	return e, nil
}

// MoveLeft shifts the active piece one column left if the target is free.
// Returns whether the piece moved.
func (e *Engine) MoveLeft() bool {
	return e.shift(-1)
}

// MoveRight shifts the active piece one column right if the target is free.
func (e *Engine) MoveRight() bool {
	return e.shift(1)
}

func (e *Engine) shift(dx int) bool {
	if e.gameOver {
		return false
	}
	if e.board.Collides(e.active.Matrix, e.active.X+dx, e.active.Y) {
		return false
	}
	e.active.X += dx
	return true
}

// Rotate turns the active piece clockwise in place. A rotation that would
// collide is discarded; there are no wall kicks.
func (e *Engine) Rotate() bool {
	if e.gameOver {
		return false
	}
	rotated := Rotate(e.active.Matrix)
	if e.board.Collides(rotated, e.active.X, e.active.Y) {
		return false
	}
	e.active.Matrix = rotated
	return true
}

// Step moves the active piece down one row. When it cannot move, the
// piece is locked, full rows are cleared and the next piece spawns.
// Returns whether state changed.
func (e *Engine) Step() bool {
	if e.gameOver {
		return false
	}
	if !e.board.Collides(e.active.Matrix, e.active.X, e.active.Y+1) {
		e.active.Y++
		return true
	}

	e.placeBlock()
	e.clearLines()
	e.spawnNew()
	return true
}

// Restart clears the board and score and spawns a fresh piece.
func (e *Engine) Restart() error {
	if !e.gameOver {
		return fmt.Errorf("tetris: %w", core.ErrNotGameOver)
	}
	e.board.Clear()
	e.score = 0
	e.lines = 0
	e.pieces = 0
	e.gameOver = false
	e.spawnNew()
	return nil
}

// placeBlock locks the active piece into the board.
func (e *Engine) placeBlock() {
	e.board.Place(e.active.Matrix, e.active.X, e.active.Y)
}

// clearLines removes full rows and credits the score.
func (e *Engine) clearLines() int {
	cleared := e.board.ClearFull()
	e.lines += cleared
	e.score += cleared * e.cfg.Scoring.PointsPerLine
	return cleared
}

// spawnNew places the picker's next shape at the spawn anchor. A spawn
// that collides ends the game. Out-of-catalogue picks fall back to I.
func (e *Engine) spawnNew() {
	id := e.picker.Next()
	if !id.Valid() {
		id = ShapeI
	}
	e.active = Piece{
		Shape:  id,
		Matrix: Template(id),
		X:      e.cfg.Spawn.X,
		Y:      e.cfg.Spawn.Y,
	}
	e.pieces++
	if e.board.Collides(e.active.Matrix, e.active.X, e.active.Y) {
		e.gameOver = true
	}
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the number of rows cleared since the last restart.
func (e *Engine) Lines() int { return e.lines }

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool { return e.gameOver }

// Active returns a copy of the active piece.
func (e *Engine) Active() Piece {
	p := e.active
	p.Matrix = p.Matrix.Clone()
	return p
}
