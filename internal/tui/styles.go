package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robofolio/robofolio/internal/search/query"
)

// Styles contains the style definitions for the search screen.
type Styles struct {
	Prompt    lipgloss.Style
	Status    lipgloss.Style
	Message   lipgloss.Style
	Title     lipgloss.Style
	Excerpt   lipgloss.Style
	Type      lipgloss.Style
	Highlight lipgloss.Style
	Selected  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values.
func NewStyles() *Styles {
	return &Styles{
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Message:   lipgloss.NewStyle().Italic(true),
		Title:     lipgloss.NewStyle().Bold(true),
		Excerpt:   lipgloss.NewStyle().Faint(true),
		Type:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")), // blue
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
	}
}

// renderMarked renders marked text with highlighted runs in the Highlight style and the rest in
// base.
func (s *Styles) renderMarked(m query.Marked, base lipgloss.Style) string {
	var out string
	for _, seg := range m.Segments() {
		if seg.Depth > 0 {
			out += s.Highlight.Render(seg.Text)
		} else {
			out += base.Render(seg.Text)
		}
	}
	return out
}
