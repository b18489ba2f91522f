package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Raise   key.Binding
	Lower   key.Binding
	Bet     key.Binding
	Cancel  key.Binding
	CashOut key.Binding
	Start   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Raise: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "raise bet"),
		),
		Lower: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "lower bet"),
		),
		Bet: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "place bet"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cancel bet"),
		),
		CashOut: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "cash out"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sail now"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Bet, k.CashOut, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Raise, k.Lower, k.Bet, k.Cancel},
		{k.CashOut, k.Start, k.Help, k.Quit},
	}
}
