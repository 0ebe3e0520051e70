package tetris

import (
	"github.com/vovakirdan/grid-arcade/internal/core"
)

// ShapeID names one of the seven tetromino templates.
type ShapeID int

const (
	ShapeI ShapeID = iota
	ShapeO
	ShapeT
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ
)

// ShapeCount is the size of the catalogue.
const ShapeCount = 7

func (s ShapeID) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeL:
		return "L"
	case ShapeJ:
		return "J"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	default:
		return "?"
	}
}

// Valid reports whether s is in the catalogue.
func (s ShapeID) Valid() bool {
	return s >= 0 && s < ShapeCount
}

// Color returns the display color for pieces of this shape.
func (s ShapeID) Color() core.Color {
	switch s {
	case ShapeI:
		return core.ColorCyan
	case ShapeO:
		return core.ColorYellow
	case ShapeT:
		return core.ColorMagenta
	case ShapeL:
		return core.ColorOrange
	case ShapeJ:
		return core.ColorBlue
	case ShapeS:
		return core.ColorGreen
	case ShapeZ:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// Matrix is a rectangular boolean grid, indexed [row][col]. true = filled.
type Matrix [][]bool

// templates holds the spawn orientation of every shape, indexed by ShapeID.
var templates = [ShapeCount]Matrix{
	ShapeI: parse("####"),
	ShapeO: parse("##", "##"),
	ShapeT: parse(".#.", "###"),
	ShapeL: parse("..#", "###"),
	ShapeJ: parse("#..", "###"),
	ShapeS: parse(".##", "##."),
	ShapeZ: parse("##.", ".##"),
}

// parse builds a matrix from rows of '#' (filled) and '.' (empty).
func parse(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for r, row := range rows {
		m[r] = make([]bool, len(row))
		for c, ch := range row {
			m[r][c] = ch == '#'
		}
	}
	return m
}

// Template returns a fresh copy of the spawn orientation for s.
func Template(s ShapeID) Matrix {
	if !s.Valid() {
		return nil
	}
	return templates[s].Clone()
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for r := range m {
		out[r] = append([]bool(nil), m[r]...)
	}
	return out
}

// Height returns the number of rows.
func (m Matrix) Height() int {
	return len(m)
}

// Width returns the number of columns.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Equal reports whether two matrices have the same shape and contents.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for r := range m {
		if len(m[r]) != len(o[r]) {
			return false
		}
		for c := range m[r] {
			if m[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// Cells returns the offsets of every filled cell, row-major.
func (m Matrix) Cells() []core.Point {
	var cells []core.Point
	for r, row := range m {
		for c, filled := range row {
			if filled {
				cells = append(cells, core.Point{X: c, Y: r})
			}
		}
	}
	return cells
}

// Rotate returns m turned 90° clockwise: the transpose of m with its rows
// reversed. An h×w matrix becomes w×h. Four rotations give back m.
func Rotate(m Matrix) Matrix {
	h, w := m.Height(), m.Width()
	out := make(Matrix, w)
	for i := 0; i < w; i++ {
		out[i] = make([]bool, h)
		for j := 0; j < h; j++ {
			out[i][j] = m[h-1-j][i]
		}
	}
	return out
}
