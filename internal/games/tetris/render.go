package tetris

import (
	"fmt"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

const (
	hudHeight = 2
	cellWidth = 2
)

// Render draws the board centered below a one-line HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	snap := g.engine.Snapshot()

	hud := fmt.Sprintf(" Tetris — Score: %d  Lines: %d  Piece: %s", snap.Score, snap.Lines, snap.Shape)
	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}

	boardW := snap.Cols*cellWidth + 2
	boardH := snap.Rows + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	frame := core.CenteredRect(dst.Width(), dst.Height()-hudHeight, boardW, boardH)
	frame.Y += hudHeight
	dst.DrawBox(frame)

	fallColor := snap.Shape.Color()
	for y, row := range snap.Cells {
		for x, cell := range row {
			sx, sy := frame.X+1+x*cellWidth, frame.Y+1+y
			switch cell {
			case CellEmpty:
				dst.SetColored(sx, sy, ' ', core.ColorDefault)
				dst.SetColored(sx+1, sy, '·', core.ColorGray)
			case CellLocked:
				dst.SetColored(sx, sy, '▓', core.ColorBrightWhite)
				dst.SetColored(sx+1, sy, '▓', core.ColorBrightWhite)
			case CellFalling:
				dst.SetColored(sx, sy, '█', fallColor)
				dst.SetColored(sx+1, sy, '█', fallColor)
			}
		}
	}

	if snap.GameOver {
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score %d · R restart · B menu", snap.Score))
	}
}
