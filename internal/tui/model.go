// Package tui is a terminal front-end for site search: a query input with a results panel
// below it, driven by the same search component as the site.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robofolio/robofolio/internal/search"
)

// Screen layout, in lines from the top.
const (
	inputLine   = 0
	panelTop    = 2 // below the status line
	itemHeight  = 3 // title, excerpt, blank
	placeholder = "Search posts and projects"
)

// Options configure a Model.
type Options struct {
	Delay  time.Duration // input debounce delay, search.DefaultDelay if zero
	Styles *Styles       // defaults to NewStyles()
}

// refreshMsg asks the program to redraw after the results panel changed outside of Update.
type refreshMsg struct{}

// loadedMsg is sent once the index load has finished, successfully or not.
type loadedMsg struct{}

// Model is the bubbletea model of the search screen.
type Model struct {
	ctx    context.Context
	load   search.LoadFunc
	search *search.Search
	screen *screen
	input  textinput.Model
	keys   keyMap
	styles *Styles

	width      int
	loadDone   bool
	navigateTo string // href of the result the user picked
}

// New creates a search screen over the index returned by load. The index is loaded when the
// program starts.
func New(ctx context.Context, load search.LoadFunc, opt Options) *Model {
	if opt.Styles == nil {
		opt.Styles = NewStyles()
	}
	scr := newScreen()
	input := textinput.New()
	input.Prompt = opt.Styles.Prompt.Render("search › ")
	input.Placeholder = placeholder
	input.Focus()
	return &Model{
		ctx:    ctx,
		load:   load,
		search: search.New(scr, search.Options{Delay: opt.Delay}),
		screen: scr,
		input:  input,
		keys:   newKeyMap(),
		styles: opt.Styles,
	}
}

// Selected returns the URL of the result the user picked, or "" if none was picked.
func (m *Model) Selected() string {
	return m.navigateTo
}

// Close cancels any pending debounced query.
func (m *Model) Close() {
	m.search.Close()
}

// loadIndex starts loading the index and waits for it in a command, so the screen is usable
// (with no results) while the load is pending.
func (m *Model) loadIndex() tea.Msg {
	<-m.search.Start(m.ctx, m.load)
	return loadedMsg{}
}

// Init starts loading the index.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadIndex)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case loadedMsg:
		m.loadDone = true
		return m, nil

	case refreshMsg:
		return m, nil

	case tea.MouseMsg:
		return m, m.click(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if !m.input.Focused() {
			switch {
			case key.Matches(msg, m.keys.Focus):
				return m, m.input.Focus()
			case key.Matches(msg, m.keys.Close):
				return m, tea.Quit
			}
			return m, nil
		}
		if k := m.keys.searchKey(msg); k != search.KeyOther {
			m.search.Key(k)
			return m, m.applyActions()
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.search.Input(value)
	}
	return m, cmd
}

// applyActions carries out a blur or navigation the search requested.
func (m *Model) applyActions() tea.Cmd {
	href, blur := m.screen.takeActions()
	if blur {
		m.input.Blur()
	}
	if href != "" {
		m.navigateTo = href
		return tea.Quit
	}
	return nil
}

// hit returns what is shown at line y: the input, the results panel (with the index of the
// result there, or -1), or neither.
func (m *Model) hit(y int) (target search.Target, item int) {
	if y == inputLine {
		return search.TargetInput, -1
	}
	panel, visible, _ := m.screen.state()
	if !visible || y < panelTop {
		return search.TargetOther, -1
	}
	if panel.Empty() {
		if y == panelTop {
			return search.TargetPanel, -1
		}
		return search.TargetOther, -1
	}
	if i := (y - panelTop) / itemHeight; i < len(panel.Items) {
		return search.TargetPanel, i
	}
	return search.TargetOther, -1
}

func (m *Model) click(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	target, item := m.hit(msg.Y)
	m.search.Click(target)
	switch {
	case target == search.TargetInput:
		return m.input.Focus()
	case target == search.TargetPanel && item >= 0:
		panel, _, _ := m.screen.state()
		m.navigateTo = panel.Items[item].Href
		return tea.Quit
	}
	return nil
}

func (m *Model) status() string {
	switch {
	case !m.loadDone && !m.search.Loaded():
		return "Loading search index..."
	case !m.search.Loaded():
		return "Search index unavailable"
	}
	return m.keys.help(m.input.Focused())
}

// View renders the screen.
func (m *Model) View() string {
	line := lipgloss.NewStyle()
	if m.width > 0 {
		line = line.MaxWidth(m.width)
	}

	lines := []string{
		m.input.View(),
		m.styles.Status.Render(m.status()),
	}
	panel, visible, selected := m.screen.state()
	if visible {
		if panel.Empty() {
			lines = append(lines, m.styles.Message.Render(panel.Message()))
		}
		for i, item := range panel.Items {
			cursor := "  "
			if i == selected {
				cursor = m.styles.Selected.Render("› ")
			}
			lines = append(lines,
				cursor+m.styles.renderMarked(item.Title, m.styles.Title)+"  "+m.styles.Type.Render(item.Type),
				"  "+m.styles.renderMarked(item.Excerpt, m.styles.Excerpt),
				"",
			)
		}
	}
	for i, l := range lines {
		lines[i] = line.Render(l)
	}
	return strings.Join(lines, "\n")
}
