package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the pager's key bindings.
type KeyMap struct {
	Backward  key.Binding
	Forward   key.Binding
	Size      key.Binding
	PageEntry key.Binding
	MenuPrev  key.Binding
	MenuNext  key.Binding
	Up        key.Binding
	Down      key.Binding
	Submit    key.Binding
	Choose    key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Backward: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous page"),
		),
		Forward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		Size: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "page size"),
		),
		PageEntry: key.NewBinding(
			key.WithKeys("g", ":"),
			key.WithHelp("g", "go to page"),
		),
		MenuPrev: key.NewBinding(
			key.WithKeys("left", "h", "up", "k"),
			key.WithHelp("←", "smaller"),
		),
		MenuNext: key.NewBinding(
			key.WithKeys("right", "l", "down", "j"),
			key.WithHelp("→", "larger"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose item"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
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
	return []key.Binding{k.Backward, k.Forward, k.Size, k.PageEntry, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Backward, k.Forward, k.Size, k.PageEntry},
		{k.Up, k.Down, k.Choose, k.Submit, k.Cancel},
		{k.Help, k.Quit},
	}
}
