package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Pin      key.Binding
	Timeline key.Binding
	Theme    key.Binding
	Copy     key.Binding
	Open     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:     key.NewBinding(key.WithKeys("[", "p"), key.WithHelp("[/p", "previous turn")),
		Next:     key.NewBinding(key.WithKeys("]", "n"), key.WithHelp("]/n", "next turn")),
		First:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first turn")),
		Last:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last turn")),
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn", "page down")),
		Pin:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "pin turn")),
		Timeline: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle timeline")),
		Theme:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "cycle theme")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy answer")),
		Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open page")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Pin, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Pin, k.Copy, k.Open, k.Reload},
		{k.Timeline, k.Theme, k.Help, k.Quit},
	}
}
