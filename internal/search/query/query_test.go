package query

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		query      string
		wantTerms  []string
		searchable bool
	}{
		"empty":            {query: "", wantTerms: []string{}, searchable: false},
		"one char":         {query: "a", wantTerms: []string{"a"}, searchable: false},
		"two chars":        {query: "ab", wantTerms: []string{"ab"}, searchable: true},
		"whitespace only":  {query: "   ", wantTerms: []string{}, searchable: false},
		"lowercased":       {query: "Robot ARM", wantTerms: []string{"robot", "arm"}, searchable: true},
		"runs of spaces":   {query: "arm \t\n design", wantTerms: []string{"arm", "design"}, searchable: true},
		"keeps duplicates": {query: "arm arm", wantTerms: []string{"arm", "arm"}, searchable: true},
		"multibyte runes":  {query: "é", wantTerms: []string{"é"}, searchable: false},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			q := Parse(test.query)
			if got := q.Terms(); !reflect.DeepEqual(got, test.wantTerms) {
				t.Errorf("got terms %q, want %q", got, test.wantTerms)
			}
			if got := q.Searchable(); got != test.searchable {
				t.Errorf("got searchable %v, want %v", got, test.searchable)
			}
			if got := q.String(); got != test.query {
				t.Errorf("got input %q, want %q", got, test.query)
			}
		})
	}
}

func TestQuery_Match(t *testing.T) {
	tests := map[string]struct {
		query string
		text  string
		want  bool
	}{
		"single term":           {query: "arm", text: "Robot Arm", want: true},
		"all terms required":    {query: "arm wheel", text: "Robot Arm", want: false},
		"substring not word":    {query: "bot", text: "Robot", want: true},
		"literal not regexp":    {query: "a.m", text: "arm", want: false},
		"literal special chars": {query: "c++", text: "written in C++", want: true},
		"case insensitive":      {query: "DESIGN", text: "a robotic arm design", want: true},
		"order irrelevant":      {query: "design robotic", text: "a robotic arm design", want: true},
		"no terms matches none": {query: "  ", text: "anything", want: false},
		"term spans separator":  {query: "arm a", text: "arm a", want: true},
		"missing in text":       {query: "zzzznotfound", text: "a robotic arm", want: false},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Parse(test.query).Match(test.text); got != test.want {
				t.Errorf("got %v, want %v", got, test.want)
			}
		})
	}
}

func TestQuery_Highlight(t *testing.T) {
	tests := map[string]struct {
		query    string
		text     string
		wantHTML string
	}{
		"no match": {
			query:    "zz",
			text:     "Robot Arm",
			wantHTML: "Robot Arm",
		},
		"case preserved": {
			query:    "arm",
			text:     "Robot Arm and arm",
			wantHTML: "Robot <mark>Arm</mark> and <mark>arm</mark>",
		},
		"multiple terms": {
			query:    "arm design",
			text:     "A robotic arm design",
			wantHTML: "A robotic <mark>arm</mark> <mark>design</mark>",
		},
		"overlapping terms nest": {
			query:    "arm r",
			text:     "arm",
			wantHTML: "<mark>a<mark>r</mark>m</mark>",
		},
		"duplicate terms nest twice": {
			query:    "ab ab",
			text:     "ab",
			wantHTML: "<mark><mark>ab</mark></mark>",
		},
		"later term cannot match across earlier markers": {
			query:    "ro rob",
			text:     "robot",
			wantHTML: "<mark>ro</mark>bot",
		},
		"escapes text": {
			query:    "b<",
			text:     "a<b<c",
			wantHTML: "a&lt;<mark>b&lt;</mark>c",
		},
		"markers in source are dropped": {
			query:    "ab",
			text:     "a\x02b",
			wantHTML: "<mark>ab</mark>",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := Parse(test.query).Highlight(test.text)
			if string(got.HTML()) != test.wantHTML {
				t.Errorf("got %q, want %q", got.HTML(), test.wantHTML)
			}
			if plain := got.Plain(); plain != stripMarkers(test.text) {
				t.Errorf("got plain %q, want %q", plain, test.text)
			}
		})
	}
}

func TestMarked_Segments(t *testing.T) {
	got := Parse("arm r").Highlight("farm").Segments()
	want := []Segment{
		{Text: "f", Depth: 0},
		{Text: "a", Depth: 1},
		{Text: "r", Depth: 2},
		{Text: "m", Depth: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got segments %+v, want %+v", got, want)
	}
}

func TestMarked_Append(t *testing.T) {
	m := Parse("arm").Highlight("arm").Append("...")
	if got, want := string(m.HTML()), "<mark>arm</mark>..."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
