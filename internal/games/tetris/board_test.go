package tetris

import "testing"

// boardFrom builds a board from rows of '#' (locked) and '.' (empty).
func boardFrom(rows ...string) *Board {
	b := NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				b.lock(x, y)
			}
		}
	}
	return b
}

func (b *Board) String() string {
	s := ""
	for y := 0; y < b.rows; y++ {
		if y > 0 {
			s += "/"
		}
		for x := 0; x < b.cols; x++ {
			if b.Locked(x, y) {
				s += "#"
			} else {
				s += "."
			}
		}
	}
	return s
}

func TestCollides(t *testing.T) {
	b := boardFrom(
		"....",
		"....",
		"..#.",
		"....",
	)
	o := Template(ShapeO)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"free top-left", 0, 0, false},
		{"left wall", -1, 0, true},
		{"right wall", 3, 0, true},
		{"floor", 0, 3, true},
		{"resting on floor", 0, 2, false},
		{"overlaps locked", 1, 1, true},
		{"touching locked", 0, 1, false},
		{"above top edge is not checked", 0, -1, false},
		{"far above top edge", 0, -10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Collides(o, tc.x, tc.y); got != tc.expected {
				t.Errorf("Collides(O, %d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCollidesIgnoresEmptyMatrixCells(t *testing.T) {
	b := boardFrom(
		"#...",
		"....",
	)
	// T's top-left cell is empty, so it may sit over a locked cell
	if b.Collides(Template(ShapeT), 0, 0) {
		t.Error("empty matrix cells must not collide")
	}
}

func TestPlace(t *testing.T) {
	b := NewBoard(4, 3)
	b.Place(Template(ShapeS), 1, 1)

	expected := "..../..##/.##."
	if b.String() != expected {
		t.Errorf("board = %s, expected %s", b, expected)
	}
}

func TestClearFull(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		cleared  int
		expected string
	}{
		{
			name:     "no full rows",
			rows:     []string{"...", "#.#", "##."},
			cleared:  0,
			expected: ".../#.#/##.",
		},
		{
			name:     "bottom row",
			rows:     []string{"...", "#..", "###"},
			cleared:  1,
			expected: ".../.../#..",
		},
		{
			name:     "two separated rows keep the gap row order",
			rows:     []string{"#..", "###", ".#.", "###", "..#"},
			cleared:  2,
			expected: ".../.../#../.#./..#",
		},
		{
			name:     "every row",
			rows:     []string{"##", "##"},
			cleared:  2,
			expected: "../..",
		},
		{
			name:     "floating row below partial rows",
			rows:     []string{"#.#", "###", "..."},
			cleared:  1,
			expected: ".../#.#/...",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFrom(tc.rows...)
			if got := b.ClearFull(); got != tc.cleared {
				t.Errorf("ClearFull() = %d, expected %d", got, tc.cleared)
			}
			if b.String() != tc.expected {
				t.Errorf("board = %s, expected %s", b, tc.expected)
			}
			if b.Rows() != len(tc.rows) {
				t.Errorf("row count changed to %d", b.Rows())
			}
		})
	}
}

func TestLockedOffBoard(t *testing.T) {
	b := boardFrom("##")
	if b.Locked(-1, 0) || b.Locked(2, 0) || b.Locked(0, -1) || b.Locked(0, 1) {
		t.Error("off-board cells are never locked")
	}
}
