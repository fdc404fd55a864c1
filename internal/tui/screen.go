package tui

import (
	"sync"

	"github.com/robofolio/robofolio/internal/search"
)

// screen is the results panel as the terminal shows it. It implements search.UI.
//
// A Search calls screen with its own lock held, from the event loop or from a debounce timer
// goroutine. So screen only records state, leaving blur and navigation for the model to apply,
// and notify must not block.
type screen struct {
	notify func() // called after every change; may be nil

	mu       sync.Mutex
	panel    search.Panel
	visible  bool
	selected int
	href     string // pending navigation
	blur     bool   // pending blur
}

func newScreen() *screen {
	return &screen{selected: -1}
}

func (s *screen) changed() {
	if s.notify != nil {
		s.notify()
	}
}

func (s *screen) Draw(p search.Panel) {
	s.mu.Lock()
	s.panel = p
	s.selected = -1
	s.mu.Unlock()
	s.changed()
}

func (s *screen) Show() {
	s.mu.Lock()
	s.visible = true
	s.mu.Unlock()
	s.changed()
}

func (s *screen) Hide() {
	s.mu.Lock()
	s.visible = false
	s.mu.Unlock()
	s.changed()
}

func (s *screen) Select(i int) {
	s.mu.Lock()
	s.selected = i
	s.mu.Unlock()
	s.changed()
}

func (s *screen) Navigate(href string) {
	s.mu.Lock()
	s.href = href
	s.mu.Unlock()
}

func (s *screen) Blur() {
	s.mu.Lock()
	s.blur = true
	s.mu.Unlock()
}

// state returns what the panel currently shows.
func (s *screen) state() (panel search.Panel, visible bool, selected int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panel, s.visible, s.selected
}

// takeActions returns and clears the pending navigation and blur.
func (s *screen) takeActions() (href string, blur bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	href, blur = s.href, s.blur
	s.href, s.blur = "", false
	return href, blur
}
