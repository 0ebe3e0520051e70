package snake

import (
	"fmt"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

const (
	hudHeight = 2
	cellWidth = 2 // Terminal cells are roughly twice as tall as wide
)

// Render draws the snapshot centered below a one-line HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	snap := g.engine.Snapshot()

	g.renderHUD(dst, snap)

	boardW := snap.Width*cellWidth + 2
	boardH := snap.Height + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	frame := core.CenteredRect(dst.Width(), dst.Height()-hudHeight, boardW, boardH)
	frame.Y += hudHeight
	dst.DrawBox(frame)

	originX, originY := frame.X+1, frame.Y+1
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			drawCell(dst, originX+x*cellWidth, originY+y, '·', ' ', core.ColorGray)
		}
	}
	for _, p := range snap.Trail {
		drawCell(dst, originX+p.X*cellWidth, originY+p.Y, '█', '█', core.ColorBlue)
	}
	headColor := core.ColorBrightGreen
	if snap.GameOver {
		headColor = core.ColorRed
	}
	drawCell(dst, originX+snap.Head.X*cellWidth, originY+snap.Head.Y, '█', '█', headColor)

	if snap.GameOver {
		dst.DrawOverlay("Game Over! You hit a wall or your own trail.", "R restart · B menu · Q quit")
	}
}

func drawCell(dst *core.Screen, x, y int, left, right rune, c core.Color) {
	dst.SetColored(x, y, left, c)
	dst.SetColored(x+1, y, right, c)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Snake Trail — Trail: %d  Head: (%d,%d)", len(snap.Trail), snap.Head.X, snap.Head.Y)
	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}
