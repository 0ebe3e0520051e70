package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/snake"
	"github.com/vovakirdan/grid-arcade/internal/games/tetris"
)

// GameKeyMap holds the bindings of one game. Bindings a game does not use
// stay zero, which leaves them disabled and out of the help view.
type GameKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Rotate     key.Binding
	Step       key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
	Help       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Rotate, k.Step, k.Restart, k.Back, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Rotate, k.Step},
		{k.Restart, k.Back, k.Quit},
		{k.Screenshot, k.Help},
	}
}

// Intent maps a key to exactly one intent. Keys without a binding map to
// IntentNone.
func (k GameKeyMap) Intent(msg tea.KeyMsg) core.Intent {
	switch {
	case key.Matches(msg, k.Quit):
		return core.IntentQuit
	case key.Matches(msg, k.Back):
		return core.IntentBack
	case key.Matches(msg, k.Restart):
		return core.IntentRestart
	case key.Matches(msg, k.Up):
		return core.IntentUp
	case key.Matches(msg, k.Down):
		return core.IntentDown
	case key.Matches(msg, k.Left):
		return core.IntentLeft
	case key.Matches(msg, k.Right):
		return core.IntentRight
	case key.Matches(msg, k.Rotate):
		return core.IntentRotate
	case key.Matches(msg, k.Step):
		return core.IntentStep
	}
	return core.IntentNone
}

func platformKeys() GameKeyMap {
	return GameKeyMap{
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// SnakeKeys moves the head with arrows or WASD.
func SnakeKeys() GameKeyMap {
	k := platformKeys()
	k.Up = key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up"))
	k.Down = key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down"))
	k.Left = key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left"))
	k.Right = key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right"))
	return k
}

// TetrisKeys shifts with left/right, rotates with up and steps with down
// or space.
func TetrisKeys() GameKeyMap {
	k := platformKeys()
	k.Left = key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left"))
	k.Right = key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right"))
	k.Rotate = key.NewBinding(key.WithKeys("up", "w", "x"), key.WithHelp("↑/x", "rotate"))
	k.Step = key.NewBinding(key.WithKeys("down", "s", " "), key.WithHelp("↓/space", "drop one"))
	return k
}

// KeysFor returns the bindings for a game. Unknown games only get the
// platform keys.
func KeysFor(gameID string) GameKeyMap {
	switch gameID {
	case snake.GameID:
		return SnakeKeys()
	case tetris.GameID:
		return TetrisKeys()
	}
	return platformKeys()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
