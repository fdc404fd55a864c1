package search

import (
	"github.com/robofolio/robofolio/internal/search/index"
	"github.com/robofolio/robofolio/internal/search/query"
)

const (
	excerptLength = 150 // characters of content used when an entry has no excerpt
	ellipsis      = "..."
)

// Panel is the content of the results panel.
type Panel struct {
	Query string
	Items []Item
}

// Item is one rendered result.
type Item struct {
	Href    string
	Title   query.Marked
	Excerpt query.Marked
	Type    string
}

// Empty reports whether the panel shows the no-results message.
func (p Panel) Empty() bool { return len(p.Items) == 0 }

// Message is the text shown when there are no results.
func (p Panel) Message() string {
	return `No results found for "` + p.Query + `"`
}

// NewPanel renders results for the query, highlighting every query term in each title and
// excerpt.
func NewPanel(results []index.Entry, queryStr string) Panel {
	q := query.Parse(queryStr)
	items := make([]Item, len(results))
	for i, e := range results {
		items[i] = Item{
			Href:    e.URL,
			Title:   q.Highlight(e.Title),
			Excerpt: q.Highlight(excerpt(e)).Append(ellipsis),
			Type:    e.Type,
		}
	}
	return Panel{Query: queryStr, Items: items}
}

func excerpt(e index.Entry) string {
	if e.Excerpt != "" {
		return e.Excerpt
	}
	r := []rune(e.Content)
	if len(r) > excerptLength {
		r = r[:excerptLength]
	}
	return string(r)
}
