package query

import (
	"html"
	"html/template"
	"strings"
)

// Highlight markers. Both are stripped from query terms and from source text before
// marking, so a marker in the output was always inserted by Highlight.
const (
	markOpen  = "\x02"
	markClose = "\x03"
)

var markerStripper = strings.NewReplacer(markOpen, "", markClose, "")

func stripMarkers(s string) string { return markerStripper.Replace(s) }

// Marked is text carrying highlight markers produced by Query.Highlight.
type Marked string

// Segment is a run of text at a fixed highlight nesting depth. Depth 0 is plain text.
type Segment struct {
	Text  string
	Depth int
}

// Segments splits the marked text into runs of equal highlight depth.
func (m Marked) Segments() []Segment {
	var (
		segs  []Segment
		depth int
		buf   strings.Builder
	)
	flush := func() {
		if buf.Len() > 0 {
			segs = append(segs, Segment{Text: buf.String(), Depth: depth})
			buf.Reset()
		}
	}
	for _, r := range string(m) {
		switch string(r) {
		case markOpen:
			flush()
			depth++
		case markClose:
			flush()
			if depth > 0 {
				depth--
			}
		default:
			buf.WriteRune(r)
		}
	}
	flush()
	return segs
}

// Plain returns the text without markers.
func (m Marked) Plain() string { return stripMarkers(string(m)) }

// HTML renders the marked text with each marker pair as a <mark> element and all other
// text escaped. Nested markers produce nested <mark> elements.
func (m Marked) HTML() template.HTML {
	var (
		b    strings.Builder
		text strings.Builder
		open int
	)
	flush := func() {
		b.WriteString(html.EscapeString(text.String()))
		text.Reset()
	}
	for _, r := range string(m) {
		switch string(r) {
		case markOpen:
			flush()
			b.WriteString("<mark>")
			open++
		case markClose:
			flush()
			if open > 0 {
				b.WriteString("</mark>")
				open--
			}
		default:
			text.WriteRune(r)
		}
	}
	flush()
	for ; open > 0; open-- {
		b.WriteString("</mark>")
	}
	return template.HTML(b.String())
}

// Append returns m followed by the plain text s.
func (m Marked) Append(s string) Marked { return m + Marked(stripMarkers(s)) }
