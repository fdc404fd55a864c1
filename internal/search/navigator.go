package search

// Cursor returns the index of the selected result, or -1 if none is selected.
func (s *Search) Cursor() int {
	if s == nil {
		return -1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Panel returns the currently rendered results panel.
func (s *Search) Panel() Panel {
	if s == nil {
		return Panel{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panel
}

// Key handles a key press on the query input. It reports whether the key was consumed, in
// which case its default action (scrolling, submitting) should be suppressed.
//
// Down and Up move the selection over the rendered results, clamped at both ends. Enter
// navigates to the selected result. Escape hides the results and blurs the input.
func (s *Search) Key(k Key) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.panel.Items)
	switch k {
	case KeyDown:
		s.cursor = min(s.cursor+1, n-1)
		s.ui.Select(s.cursor)
		return true
	case KeyUp:
		if n > 0 {
			s.cursor = max(s.cursor-1, 0)
		}
		s.ui.Select(s.cursor)
		return true
	case KeyEnter:
		if s.cursor >= 0 && s.cursor < n {
			s.ui.Navigate(s.panel.Items[s.cursor].Href)
			return true
		}
	case KeyEscape:
		s.ui.Hide()
		s.ui.Blur()
	}
	return false
}

// Click handles a pointer click anywhere on the page. A click outside both the input and
// the results panel hides the results.
func (s *Search) Click(t Target) {
	if s == nil || t != TargetOther {
		return
	}
	s.Hide()
}
