// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	Up   key.Binding
	Down key.Binding

	// Select confirms a selection or moves from the query to the results.
	Select key.Binding

	// Open opens the highlighted record in the browser.
	Open key.Binding

	// NewSearch returns focus to the query from the results.
	NewSearch key.Binding

	// Kind cycles the record kind filter.
	Kind key.Binding

	NextDay key.Binding
	PrevDay key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter/o", "open"),
		),
		NewSearch: key.NewBinding(
			key.WithKeys("n", "/"),
			key.WithHelp("n", "new search"),
		),
		Kind: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "filter kind"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// ResultsHelp returns keybindings for the results view.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.NewSearch, k.Up, k.Open, k.Kind, k.Back}
}

// ProgrammeHelp returns keybindings for the programme view.
func (k *KeyMap) ProgrammeHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Up, k.Open, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Open},
		{k.NewSearch, k.Kind, k.PrevDay, k.NextDay},
		{k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
