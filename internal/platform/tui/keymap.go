package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/name-jumper/internal/core"
)

// KeyMap holds the in-game key bindings. It implements help.KeyMap so the
// help line is generated from the same bindings the model matches against.
type KeyMap struct {
	Jump       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑/w", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "new name"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Action translates a key message to a host action.
// Screenshot is not an action; check it with key.Matches directly.
func (km KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.Jump):
		return core.ActionJump
	case key.Matches(msg, km.Pause):
		return core.ActionPause
	case key.Matches(msg, km.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// setEnded toggles the bindings that only make sense after a session ended.
func (km *KeyMap) setEnded(ended bool) {
	km.Jump.SetEnabled(!ended)
	km.Pause.SetEnabled(!ended)
	km.Restart.SetEnabled(ended)
	km.Back.SetEnabled(ended)
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Jump, km.Pause, km.Restart, km.Back, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Jump, km.Pause},
		{km.Restart, km.Back},
		{km.Screenshot, km.Quit},
	}
}
