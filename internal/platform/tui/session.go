package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

type screenMode int

const (
	modeMenu screenMode = iota
	modeGame
	modeScores
)

// SessionModel manages the full arcade flow: menu -> game or scoreboard ->
// menu. Each session creates its own game instances and never shares them.
type SessionModel struct {
	env      Env
	config   core.RuntimeConfig
	mode     screenMode
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session that starts at the menu.
func NewSessionModel(env Env, cfg core.RuntimeConfig) SessionModel {
	env = env.withDefaults()
	return SessionModel{
		env:    env,
		config: cfg,
		menu:   NewMenuModel(env.Store, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.env.Store, m.config.ScreenW, m.config.ScreenH)
		m.mode = modeScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().GameID
		game, err := registry.Create(id)
		if err == nil {
			m.game, err = NewGameModel(game, m.env, m.config)
		}
		if err != nil {
			m.env.Logger.Error("cannot start game", "game", id, "error", err)
			m.menu = NewMenuModel(m.env.Store, m.config.ScreenW, m.config.ScreenH)
			return m, nil
		}
		m.env.Logger.Debug("game started", "game", id, "player", m.env.Player)
		m.mode = modeGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu rebuilds the menu so best scores are fresh.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.mode = modeMenu
	m.game = GameModel{}
	m.menu = NewMenuModel(m.env.Store, m.config.ScreenW, m.config.ScreenH)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven arcade in the local terminal.
func RunSession(env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(env, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
