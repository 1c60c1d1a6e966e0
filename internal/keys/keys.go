// Package keys contains keybinding definitions.
package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings for the editor.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Editing
	Enter     key.Binding
	Backspace key.Binding
	Delete    key.Binding

	// General
	Save    key.Binding
	Quit    key.Binding
	Refresh key.Binding
	Escape  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "move right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "start of line"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "end of line"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "page down"),
		),

		// Editing
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "new line"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("backspace", "delete left"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "delete right"),
		),

		// General
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl-S", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("Ctrl-Q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl-L", "redraw"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "nothing"),
		),
	}
}

// ShortHelp returns keybindings for the startup help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Quit}
}

// HelpLine formats bindings as "HELP: Ctrl-S = save | Ctrl-Q = quit".
// Disabled bindings are skipped.
func HelpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" = "+h.Desc)
	}
	return "HELP: " + strings.Join(parts, " | ")
}
