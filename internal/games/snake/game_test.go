package snake

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

func newTestGame(t *testing.T, size int) *Game {
	t.Helper()
	g := New()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 30}
	if err := g.ResetWith(cfg, config.SnakeConfig{Grid: config.SnakeGrid{Size: size}}); err != nil {
		t.Fatalf("ResetWith() failed: %v", err)
	}
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("snake should register itself")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Snake Trail" {
		t.Errorf("title = %q", g.Title())
	}
}

func TestApplyMapsIntents(t *testing.T) {
	tests := []struct {
		intent   core.Intent
		expected core.Point
	}{
		{core.IntentUp, core.Point{X: 2, Y: 1}},
		{core.IntentDown, core.Point{X: 2, Y: 3}},
		{core.IntentLeft, core.Point{X: 1, Y: 2}},
		{core.IntentRight, core.Point{X: 3, Y: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.intent.String(), func(t *testing.T) {
			g := newTestGame(t, 5)
			res, err := g.Apply(tc.intent)
			if err != nil {
				t.Fatalf("Apply(%s) failed: %v", tc.intent, err)
			}
			if !res.Changed {
				t.Error("a legal move should report a change")
			}
			if g.Engine().Head() != tc.expected {
				t.Errorf("head = %v, expected %v", g.Engine().Head(), tc.expected)
			}
			if res.State.Score != 1 {
				t.Errorf("score (trail length) = %d, expected 1", res.State.Score)
			}
		})
	}
}

func TestApplyRejectsForeignIntents(t *testing.T) {
	g := newTestGame(t, 5)

	for _, in := range []core.Intent{core.IntentRotate, core.IntentStep, core.IntentNone, core.Intent(99)} {
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
	g := newTestGame(t, 3)

	if _, err := g.Apply(core.IntentRestart); !errors.Is(err, core.ErrNotGameOver) {
		t.Fatalf("restart while running: expected ErrNotGameOver, got %v", err)
	}

	g.Apply(core.IntentUp)
	res, _ := g.Apply(core.IntentUp)
	if !res.State.GameOver || !res.Changed {
		t.Fatalf("wall hit should end the game and report a change, got %+v", res)
	}

	res, err := g.Apply(core.IntentLeft)
	if err != nil || res.Changed {
		t.Errorf("move after game over should be a silent no-op, got %+v, %v", res, err)
	}

	res, err = g.Apply(core.IntentRestart)
	if err != nil {
		t.Fatalf("restart after game over failed: %v", err)
	}
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("state after restart = %+v", res.State)
	}
}

func TestApplyBeforeReset(t *testing.T) {
	if _, err := New().Apply(core.IntentUp); err == nil {
		t.Error("Apply on an uninitialized game should fail")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 5)
	g.Apply(core.IntentRight)

	screen := core.NewScreen(40, 12)
	g.Render(screen)
	content := screen.String()

	if !strings.Contains(content, "Snake Trail") {
		t.Error("HUD should contain the title")
	}
	if !strings.Contains(content, "Trail: 1") {
		t.Error("HUD should show the trail length")
	}
	if strings.Count(content, "█") != 4 {
		t.Errorf("expected head and one trail cell (4 block runes), got %d", strings.Count(content, "█"))
	}
}

func TestRenderGameOverAndTooSmall(t *testing.T) {
	g := newTestGame(t, 1)
	g.Apply(core.IntentDown)

	screen := core.NewScreen(60, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("game over overlay missing")
	}

	big := newTestGame(t, 20)
	small := core.NewScreen(20, 10)
	big.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("small window message missing")
	}
}

func TestDebugState(t *testing.T) {
	g := newTestGame(t, 5)
	if !strings.Contains(g.DebugState(), "Head: (2, 2)") {
		t.Errorf("DebugState() = %q", g.DebugState())
	}
}
