package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

func feed(t *testing.T, m SessionModel, keys ...string) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(SessionModel)
	}
	return m, cmd
}

func newSession(t *testing.T, env Env) SessionModel {
	t.Helper()
	isolateConfig(t)
	return NewSessionModel(env, core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 3})
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newSession(t, Env{})

	if !strings.Contains(m.View(), "Snake Trail") || !strings.Contains(m.View(), "Tetris") {
		t.Fatalf("menu should list both games:\n%s", m.View())
	}

	m, _ = feed(t, m, "enter")
	if m.mode != modeGame || m.game.game.ID() != "snake" {
		t.Fatalf("enter should start snake, mode=%d", m.mode)
	}

	m, _ = feed(t, m, "b")
	if m.mode != modeMenu {
		t.Fatal("b should return to the menu")
	}

	m, _ = feed(t, m, "j", "enter")
	if m.mode != modeGame || m.game.game.ID() != "tetris" {
		t.Fatal("second entry should start tetris")
	}
	if !strings.Contains(m.View(), "Tetris") {
		t.Error("game view should show the tetris HUD")
	}
}

func TestSessionGamesAreIndependent(t *testing.T) {
	a := newSession(t, Env{})
	b := NewSessionModel(Env{}, core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 3})

	a, _ = feed(t, a, "enter", "d", "d")
	b, _ = feed(t, b, "enter")

	if a.game.State().Score != 2 {
		t.Errorf("session a trail = %d, expected 2", a.game.State().Score)
	}
	if b.game.State().Score != 0 {
		t.Errorf("session b trail = %d, expected 0", b.game.State().Score)
	}
}

func TestSessionScoreboard(t *testing.T) {
	store := openStore(t)
	store.SaveScore("snake", "alice", "", 12)
	m := newSession(t, Env{Store: store})

	m, _ = feed(t, m, "tab")
	if m.mode != modeScores {
		t.Fatal("tab should open the scoreboard")
	}
	if m.scores.Rows() != 1 {
		t.Errorf("scoreboard rows = %d, expected 1", m.scores.Rows())
	}
	if !strings.Contains(m.View(), "alice") {
		t.Errorf("scoreboard should list the player:\n%s", m.View())
	}

	m, _ = feed(t, m, "tab")
	if m.scores.Rows() != 0 {
		t.Error("tetris has no scores yet")
	}

	m, _ = feed(t, m, "esc")
	if m.mode != modeMenu {
		t.Error("esc should return to the menu")
	}
	if !strings.Contains(m.View(), "best 12") {
		t.Error("menu should show the best snake score")
	}
}

func TestSessionQuit(t *testing.T) {
	for _, keys := range [][]string{{"q"}, {"enter", "q"}, {"tab", "q"}} {
		m := newSession(t, Env{})
		m, cmd := feed(t, m, keys...)
		if cmd == nil {
			t.Fatalf("%v: expected a quit command", keys)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: expected tea.QuitMsg", keys)
		}
		if m.View() != "" {
			t.Errorf("%v: quitting session should render nothing", keys)
		}
	}
}

func TestSessionResizeReachesGame(t *testing.T) {
	m := newSession(t, Env{})
	m, _ = feed(t, m, "enter")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(SessionModel)
	if m.config.ScreenW != 100 || m.game.screen.Width() != 100 {
		t.Error("resize should reach the session and the game screen")
	}
}
