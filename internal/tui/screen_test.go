package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robofolio/robofolio/internal/search"
)

func TestScreen(t *testing.T) {
	var notified int
	s := newScreen()
	s.notify = func() { notified++ }

	s.Draw(search.Panel{Query: "arm", Items: []search.Item{{Href: "/a"}, {Href: "/b"}}})
	s.Show()
	s.Select(1)
	panel, visible, selected := s.state()
	assert.Equal(t, "arm", panel.Query)
	assert.True(t, visible)
	assert.Equal(t, 1, selected)
	assert.Equal(t, 3, notified)

	// Redrawing clears the selection; hiding keeps the content.
	s.Draw(search.Panel{Query: "arm design", Items: []search.Item{{Href: "/a"}}})
	s.Hide()
	panel, visible, selected = s.state()
	assert.Equal(t, "arm design", panel.Query)
	assert.False(t, visible)
	assert.Equal(t, -1, selected)

	s.Navigate("/a")
	s.Blur()
	href, blur := s.takeActions()
	assert.Equal(t, "/a", href)
	assert.True(t, blur)
	href, blur = s.takeActions()
	assert.Equal(t, "", href)
	assert.False(t, blur, "actions are taken once")
}
