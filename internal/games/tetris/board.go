package tetris

// Board is the well: an ordered sequence of fixed-width rows, top first.
// A true cell is locked.
type Board struct {
	cols  int
	rows  int
	cells [][]bool
}

// NewBoard creates an empty cols×rows board.
func NewBoard(cols, rows int) *Board {
	b := &Board{cols: cols, rows: rows}
	b.Clear()
	return b
}

// Clear unlocks every cell.
func (b *Board) Clear() {
	b.cells = make([][]bool, b.rows)
	for y := range b.cells {
		b.cells[y] = make([]bool, b.cols)
	}
}

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Locked reports whether (x, y) holds a locked cell. Coordinates off the
// board are never locked.
func (b *Board) Locked(x, y int) bool {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return false
	}
	return b.cells[y][x]
}

// lock marks (x, y) as locked; off-board coordinates are ignored.
func (b *Board) lock(x, y int) {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return
	}
	b.cells[y][x] = true
}

// Collides reports whether m anchored at (x, y) has a filled cell left of
// column 0, right of the last column, at or below row Rows, or on a locked
// cell. Rows above the top edge are not checked.
func (b *Board) Collides(m Matrix, x, y int) bool {
	for _, p := range m.Cells() {
		bx, by := x+p.X, y+p.Y
		if bx < 0 || bx >= b.cols || by >= b.rows {
			return true
		}
		if b.Locked(bx, by) {
			return true
		}
	}
	return false
}

// Place locks every filled cell of m anchored at (x, y).
func (b *Board) Place(m Matrix, x, y int) {
	for _, p := range m.Cells() {
		b.lock(x+p.X, y+p.Y)
	}
}

// ClearFull removes every fully locked row and prepends the same number
// of empty rows, keeping the remaining rows in order. Returns the number
// of rows removed.
func (b *Board) ClearFull() int {
	kept := make([][]bool, 0, b.rows)
	for _, row := range b.cells {
		if !full(row) {
			kept = append(kept, row)
		}
	}

	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := make([][]bool, cleared, b.rows)
	for i := range fresh {
		fresh[i] = make([]bool, b.cols)
	}
	b.cells = append(fresh, kept...)
	return cleared
}

func full(row []bool) bool {
	for _, locked := range row {
		if !locked {
			return false
		}
	}
	return true
}
