// Package tui provides the Bubble Tea integration for the arcade platform.
// It maps keys to intents, drives the turn-based games, and hosts the
// menu, scoreboard and SSH server.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
	"github.com/vovakirdan/grid-arcade/internal/telemetry"
)

// Env carries the collaborators shared by every model of one session.
// Store may be nil, in which case scores are not recorded.
type Env struct {
	Store     *storage.Store
	Logger    *log.Logger
	Tracer    trace.Tracer
	Player    string
	SessionID string
}

// withDefaults fills in a discarding logger and a no-op tracer.
func (e Env) withDefaults() Env {
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	if e.Tracer == nil {
		e.Tracer = telemetry.NoopTracer()
	}
	if e.Player == "" {
		e.Player = storage.LocalPlayer
	}
	return e
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel runs one game. Every key is at most one intent; the game only
// changes when an intent is applied.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	env        Env
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	gameState  core.GameState
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// NewGameModel resets game and wraps it in a model.
func NewGameModel(game registry.Game, env Env, cfg core.RuntimeConfig) (GameModel, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return GameModel{}, fmt.Errorf("tui: cannot start %s: %w", game.ID(), err)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		env:       env.withDefaults(),
		config:    cfg,
		keys:      KeysFor(game.ID()),
		help:      h,
		gameState: game.State(),
	}, nil
}

// playfieldHeight leaves one row for the help footer.
func playfieldHeight(h int) int {
	return max(h-1, 1)
}

// Init implements tea.Model. Turn-based games need no startup command.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.env.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.env.Logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	in := m.keys.Intent(msg)
	switch in {
	case core.IntentNone:
		return m, nil
	case core.IntentQuit:
		m.quitting = true
		return m, tea.Quit
	case core.IntentBack:
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	m.apply(in)
	return m, nil
}

// apply hands one intent to the game inside its own span and records the
// score the first time the game reports game over.
func (m *GameModel) apply(in core.Intent) {
	_, span := m.env.Tracer.Start(context.Background(), "game.apply")
	defer span.End()

	res, err := m.game.Apply(in)
	span.SetAttributes(telemetry.IntentAttrs(m.game.ID(), in.String(), res.Changed, res.State.GameOver, res.State.Score)...)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		m.env.Logger.Debug("intent rejected", "game", m.game.ID(), "intent", in, "error", err)
	}

	if in == core.IntentRestart && err == nil {
		m.scoreSaved = false
	}
	m.gameState = res.State
	m.recordScore()
}

func (m *GameModel) recordScore() {
	if !m.gameState.GameOver || m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.gameState.Score <= 0 || m.env.Store == nil {
		return
	}
	if _, err := m.env.Store.SaveScore(m.game.ID(), m.env.Player, m.env.SessionID, m.gameState.Score); err != nil {
		m.env.Logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.env.Logger.Info("game over", "game", m.game.ID(), "player", m.env.Player, "score", m.gameState.Score)
}

// saveScreenshot writes the current screen to ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the user quits or leaves it.
func Run(game registry.Game, env Env, cfg core.RuntimeConfig) error {
	model, err := NewGameModel(game, env, cfg)
	if err != nil {
		return err
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
