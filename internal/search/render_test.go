package search

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robofolio/robofolio/internal/search/index"
)

func TestNewPanel(t *testing.T) {
	long := strings.Repeat("é", 200)
	tests := map[string]struct {
		entry       index.Entry
		query       string
		wantTitle   string
		wantExcerpt string
	}{
		"explicit excerpt": {
			entry:       index.Entry{Title: "Gripper", Content: "gripper content", Excerpt: "A soft gripper", URL: "/g", Type: "post"},
			query:       "grip",
			wantTitle:   "<mark>Grip</mark>per",
			wantExcerpt: "A soft <mark>grip</mark>per...",
		},
		"content excerpt truncated": {
			entry:       index.Entry{Title: "Long", Content: long, URL: "/l", Type: "doc"},
			query:       "long",
			wantTitle:   "<mark>Long</mark>",
			wantExcerpt: strings.Repeat("é", excerptLength) + "...",
		},
		"short content": {
			entry:       index.Entry{Title: "Arm", Content: "arm", URL: "/a", Type: "doc"},
			query:       "arm",
			wantTitle:   "<mark>Arm</mark>",
			wantExcerpt: "<mark>arm</mark>...",
		},
		"escaped": {
			entry:       index.Entry{Title: "<b>Arm</b>", Content: "a & b", URL: "/a", Type: "doc"},
			query:       "arm",
			wantTitle:   "&lt;b&gt;<mark>Arm</mark>&lt;/b&gt;",
			wantExcerpt: "a &amp; b...",
		},
	}
	for label, test := range tests {
		t.Run(label, func(t *testing.T) {
			p := NewPanel([]index.Entry{test.entry}, test.query)
			if len(p.Items) != 1 {
				t.Fatalf("got %d items, want 1", len(p.Items))
			}
			item := p.Items[0]
			if item.Href != test.entry.URL || item.Type != test.entry.Type {
				t.Errorf("got href %q type %q, want %q %q", item.Href, item.Type, test.entry.URL, test.entry.Type)
			}
			if got := string(item.Title.HTML()); got != test.wantTitle {
				t.Errorf("got title %q, want %q", got, test.wantTitle)
			}
			if got := string(item.Excerpt.HTML()); got != test.wantExcerpt {
				t.Errorf("got excerpt %q, want %q", got, test.wantExcerpt)
			}
		})
	}
}

func TestNewPanel_empty(t *testing.T) {
	p := NewPanel(nil, "zzzznotfound")
	want := Panel{Query: "zzzznotfound", Items: []Item{}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("panel mismatch (-want +got):\n%s", diff)
	}
	if !p.Empty() {
		t.Error("want empty panel")
	}
	if got, want := p.Message(), `No results found for "zzzznotfound"`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
