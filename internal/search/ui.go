package search

// UI is the surface a Search draws its results panel on and reads navigation from.
// Implementations are called with the Search's lock held and must not call back into the
// Search synchronously.
type UI interface {
	// Draw replaces the content of the results panel.
	Draw(p Panel)

	// Show reveals the results panel.
	Show()

	// Hide removes the results panel from view without clearing its content.
	Hide()

	// Select marks the item at index i as selected and all others as not selected. i is -1
	// when nothing is selected.
	Select(i int)

	// Navigate goes to href (the URL of a result).
	Navigate(href string)

	// Blur removes focus from the query input.
	Blur()
}

// Key is a key press on the query input that the navigator handles.
type Key int

const (
	KeyOther Key = iota
	KeyDown
	KeyUp
	KeyEnter
	KeyEscape
)

// Target is where a pointer click landed.
type Target int

const (
	TargetOther Target = iota // anywhere outside the input and the results panel
	TargetInput
	TargetPanel
)
