package tetris

// CellState is what a renderer sees at one board position.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellLocked
	CellFalling
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StateFalling  GameStateType = "falling"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is the render-facing view of the engine. Cells is indexed
// [row][col] with the active piece overlaid as CellFalling.
type Snapshot struct {
	Cols     int
	Rows     int
	Cells    [][]CellState
	Shape    ShapeID
	Score    int
	Lines    int
	Pieces   int
	GameOver bool
	State    GameStateType
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	cols, rows := e.board.Cols(), e.board.Rows()
	cells := make([][]CellState, rows)
	for y := range cells {
		cells[y] = make([]CellState, cols)
		for x := range cells[y] {
			if e.board.Locked(x, y) {
				cells[y][x] = CellLocked
			}
		}
	}

	// A spawn that ended the game overlaps locked cells; show the board
	// as it was when the game ended.
	if !e.gameOver {
		for _, p := range e.active.Matrix.Cells() {
			x, y := e.active.X+p.X, e.active.Y+p.Y
			if x >= 0 && x < cols && y >= 0 && y < rows {
				cells[y][x] = CellFalling
			}
		}
	}

	state := StateFalling
	if e.gameOver {
		state = StateGameOver
	}

	return Snapshot{
		Cols:     cols,
		Rows:     rows,
		Cells:    cells,
		Shape:    e.active.Shape,
		Score:    e.score,
		Lines:    e.lines,
		Pieces:   e.pieces,
		GameOver: e.gameOver,
		State:    state,
	}
}
