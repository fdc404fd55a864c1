package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robofolio/robofolio/internal/search"
)

// Run shows the search screen until the user quits or picks a result. It returns the URL of the
// picked result, or "" if the user quit without picking one.
func Run(ctx context.Context, load search.LoadFunc, opt Options) (string, error) {
	m := New(ctx, load, opt)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	m.screen.notify = func() { go p.Send(refreshMsg{}) }
	if _, err := p.Run(); err != nil {
		return "", err
	}
	return m.Selected(), nil
}
