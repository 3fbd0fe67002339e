package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fenetres/internal/core"
)

// KeyMap holds the bindings shared by the quiz, the desktop and the game runner.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Fullscreen key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Back, k.Fullscreen, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Back, k.Restart, k.Pause},
		{k.Fullscreen, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
// Letters are kept off the desktop so typing never triggers an action.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "haut"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "bas"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "gauche"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "droite"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("entrée", "valider"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("échap", "fermer"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rejouer"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f11"),
			key.WithHelp("F11", "plein écran"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quitter"),
		),
	}
}

// Action translates a key message to a semantic action.
// Fullscreen has no action of its own; callers match it directly.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// ActionToFrame records the action of a key in an input frame.
// Returns true if the key was a quit request.
func (k KeyMap) ActionToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	a := k.Action(msg)
	if a == core.ActionQuit {
		return true
	}
	if a != core.ActionNone {
		frame.Set(a)
	}
	return false
}
