package robofolio

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TOCEntry is a link in a page's table of contents.
type TOCEntry struct {
	ID     string // heading element ID, the link target
	Text   string // heading text
	Nested bool   // h3 under the preceding h2
}

// tocContainerID is the ID of the element that a table of contents is inserted into.
const tocContainerID = "toc"

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// headingID returns the ID given to a heading that has none.
func headingID(text string) string {
	return nonSlugChars.ReplaceAllString(strings.ToLower(text), "-")
}

// TableOfContents returns the h2 and h3 headings that are inside an element with the given
// class, in document order. Headings without an id attribute are assigned one (which modifies
// doc).
func TableOfContents(doc *html.Node, class string) []TOCEntry {
	var entries []TOCEntry
	var walk func(n *html.Node, inContainer bool)
	walk = func(n *html.Node, inContainer bool) {
		if n.Type == html.ElementNode {
			if inContainer && (n.DataAtom == atom.H2 || n.DataAtom == atom.H3) {
				text := textContent(n)
				id, ok := getAttribute(n, "id")
				if !ok || id == "" {
					id = headingID(text)
					setAttribute(n, "id", id)
				}
				entries = append(entries, TOCEntry{ID: id, Text: text, Nested: n.DataAtom == atom.H3})
			}
			if hasClass(n, class) {
				inContainer = true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inContainer)
		}
	}
	walk(doc, false)
	return entries
}

// InjectTOC appends a link for each entry to the element with id="toc". It reports whether doc
// has such an element.
func InjectTOC(doc *html.Node, entries []TOCEntry) bool {
	container := findElementByID(doc, tocContainerID)
	if container == nil {
		return false
	}
	for _, e := range entries {
		class := "toc-link"
		if e.Nested {
			class += " toc-link-nested"
		}
		a := &html.Node{
			Type:     html.ElementNode,
			Data:     "a",
			DataAtom: atom.A,
			Attr: []html.Attribute{
				{Key: "href", Val: "#" + e.ID},
				{Key: "class", Val: class},
			},
		}
		a.AppendChild(&html.Node{Type: html.TextNode, Data: e.Text})
		container.AppendChild(a)
	}
	return true
}

func findElementByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		if v, ok := getAttribute(n, "id"); ok && v == id {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElementByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	v, ok := getAttribute(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func getAttribute(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

func setAttribute(n *html.Node, key, val string) {
	for i, attr := range n.Attr {
		if attr.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
