package tetris

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

func newTestGame(t *testing.T, cfg config.TetrisConfig, shapes ...ShapeID) *Game {
	t.Helper()
	g := New()
	if err := g.ResetWith(cfg, NewSequencePicker(shapes...)); err != nil {
		t.Fatalf("ResetWith() failed: %v", err)
	}
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("tetris should register itself")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != GameID || g.Title() != "Tetris" {
		t.Errorf("id/title = %q/%q", g.ID(), g.Title())
	}
}

func TestResetFromDefaults(t *testing.T) {
	chdirWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(chdirWD) })
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")

	g := New()
	if err := g.Reset(core.RuntimeConfig{Seed: 7}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	snap := g.Engine().Snapshot()
	if snap.Cols != 10 || snap.Rows != 20 {
		t.Errorf("board = %dx%d, expected 10x20", snap.Cols, snap.Rows)
	}
}

func TestApplyMapsIntents(t *testing.T) {
	tests := []struct {
		name   string
		intent core.Intent
		check  func(p Piece) bool
	}{
		{"left", core.IntentLeft, func(p Piece) bool { return p.X == 2 }},
		{"right", core.IntentRight, func(p Piece) bool { return p.X == 4 }},
		{"step", core.IntentStep, func(p Piece) bool { return p.Y == 1 }},
		{"rotate", core.IntentRotate, func(p Piece) bool { return p.Matrix.Height() == 3 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, config.DefaultTetrisConfig(), ShapeT)
			res, err := g.Apply(tc.intent)
			if err != nil {
				t.Fatalf("Apply(%s) failed: %v", tc.intent, err)
			}
			if !res.Changed {
				t.Error("expected a change")
			}
			if p := g.Engine().Active(); !tc.check(p) {
				t.Errorf("unexpected piece after %s: %+v", tc.intent, p)
			}
		})
	}
}

func TestApplyRejectsForeignIntents(t *testing.T) {
	g := newTestGame(t, config.DefaultTetrisConfig(), ShapeT)

	for _, in := range []core.Intent{core.IntentUp, core.IntentDown, core.IntentQuit, core.Intent(99)} {
		res, err := g.Apply(in)
		if !errors.Is(err, core.ErrInvalidIntent) {
			t.Errorf("Apply(%s) error = %v, expected ErrInvalidIntent", in, err)
		}
		if res.Changed {
			t.Errorf("Apply(%s) should not change state", in)
		}
	}
}

func TestApplyRestartFlow(t *testing.T) {
	g := newTestGame(t, smallConfig(4, 4), ShapeO)

	if _, err := g.Apply(core.IntentRestart); !errors.Is(err, core.ErrNotGameOver) {
		t.Fatalf("restart while falling: expected ErrNotGameOver, got %v", err)
	}

	var res core.StepResult
	for i := 0; i < 4; i++ {
		res, _ = g.Apply(core.IntentStep)
	}
	if !res.State.GameOver {
		t.Fatal("expected game over after stacking two O pieces")
	}

	res, err := g.Apply(core.IntentStep)
	if err != nil || res.Changed {
		t.Errorf("step after game over: changed=%v err=%v, expected silent no-op", res.Changed, err)
	}

	res, err = g.Apply(core.IntentRestart)
	if err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if !res.Changed || res.State.GameOver || res.State.Score != 0 {
		t.Errorf("after restart: %+v", res)
	}
}

func TestApplyBeforeReset(t *testing.T) {
	if _, err := New().Apply(core.IntentStep); err == nil {
		t.Error("Apply on an uninitialized game should fail")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, config.DefaultTetrisConfig(), ShapeO)
	screen := core.NewScreen(80, 30)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") || !strings.Contains(out, "Piece: O") {
		t.Errorf("HUD missing from render:\n%s", out)
	}
	if !strings.Contains(out, "██") {
		t.Error("falling piece not drawn")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, smallConfig(4, 4), ShapeO)
	for i := 0; i < 4; i++ {
		g.Apply(core.IntentStep)
	}
	screen := core.NewScreen(40, 12)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Game Over") {
		t.Errorf("game over overlay missing:\n%s", screen.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, config.DefaultTetrisConfig(), ShapeO)
	screen := core.NewScreen(30, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small notice")
	}
}

func TestDebugState(t *testing.T) {
	g := newTestGame(t, config.DefaultTetrisConfig(), ShapeL)
	out := g.DebugState()
	for _, want := range []string{"Board: 10x20", "Active: L at (3, 0)", "State: falling"} {
		if !strings.Contains(out, want) {
			t.Errorf("DebugState missing %q:\n%s", want, out)
		}
	}
}
