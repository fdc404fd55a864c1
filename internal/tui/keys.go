package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/robofolio/robofolio/internal/search"
)

type keyMap struct {
	Down   key.Binding
	Up     key.Binding
	Enter  key.Binding
	Escape key.Binding
	Focus  key.Binding // refocus the query input after it was blurred
	Quit   key.Binding
	Close  key.Binding // quit when the input is not focused
}

func newKeyMap() keyMap {
	return keyMap{
		Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Focus:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Close:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// searchKey maps a key press on the query input to the key the search navigator handles.
func (k keyMap) searchKey(msg tea.KeyMsg) search.Key {
	switch {
	case key.Matches(msg, k.Down):
		return search.KeyDown
	case key.Matches(msg, k.Up):
		return search.KeyUp
	case key.Matches(msg, k.Enter):
		return search.KeyEnter
	case key.Matches(msg, k.Escape):
		return search.KeyEscape
	}
	return search.KeyOther
}

// help returns the key help shown in the status line.
func (k keyMap) help(focused bool) string {
	bindings := []key.Binding{k.Focus, k.Close}
	if focused {
		bindings = []key.Binding{k.Down, k.Up, k.Enter, k.Escape, k.Quit}
	}
	var s string
	for i, b := range bindings {
		if i > 0 {
			s += " · "
		}
		s += b.Help().Key + " " + b.Help().Desc
	}
	return s
}
