package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// View state
	Search       key.Binding
	ClearSearch  key.Binding
	ConfirmInput key.Binding
	CycleFilter  key.Binding
	CycleTarget  key.Binding
	Sort         key.Binding

	// Actions
	Export key.Binding

	// Application
	Help        key.Binding
	Quit        key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		ConfirmInput: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		CycleFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "status filter"),
		),
		CycleTarget: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "target"),
		),
		Sort: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("1-8", "sort column"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export csv"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "redraw"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.CycleFilter, k.CycleTarget, k.Sort, k.Export, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Search, k.ClearSearch, k.ConfirmInput},
		{k.CycleFilter, k.CycleTarget, k.Sort},
		{k.Export, k.Help, k.Quit, k.ClearScreen},
	}
}
