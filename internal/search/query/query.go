package query

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinLength is the shortest query (in characters) that is searched at all.
const MinLength = 2

// Query is a search query.
type Query struct {
	input string // the original query input string
	terms []term
}

type term struct {
	str     string // lowercased
	pattern *regexp.Regexp
}

func newTerm(str string) term {
	return term{
		str:     str,
		pattern: regexp.MustCompile("(?i)" + regexp.QuoteMeta(str)),
	}
}

// Parse parses a search query string. Terms keep the order (and duplicates) in which they
// appear in the input.
func Parse(queryStr string) Query {
	fields := strings.Fields(strings.ToLower(stripMarkers(queryStr)))
	terms := make([]term, len(fields))
	for i, f := range fields {
		terms[i] = newTerm(f)
	}
	return Query{
		input: queryStr,
		terms: terms,
	}
}

// String returns the original query input.
func (q Query) String() string { return q.input }

// Terms returns the lowercased query terms in input order.
func (q Query) Terms() []string {
	terms := make([]string, len(q.terms))
	for i, t := range q.terms {
		terms[i] = t.str
	}
	return terms
}

// Searchable reports whether the query is long enough to be searched and has at least one
// term.
func (q Query) Searchable() bool {
	return utf8.RuneCountInString(q.input) >= MinLength && len(q.terms) > 0
}

// Match reports whether every term of the query is a substring of the lowercased text.
func (q Query) Match(text string) bool {
	if len(q.terms) == 0 {
		return false
	}
	text = strings.ToLower(text)
	for _, t := range q.terms {
		if !strings.Contains(text, t.str) {
			return false
		}
	}
	return true
}

// Highlight wraps every case-insensitive occurrence of each term in text with highlight
// markers. Terms are applied one after another over the progressively marked text, so
// overlapping terms can produce nested markers. Markers inserted by earlier terms are never
// matched by later ones.
func (q Query) Highlight(text string) Marked {
	s := stripMarkers(text)
	for _, t := range q.terms {
		s = t.pattern.ReplaceAllStringFunc(s, func(m string) string {
			return markOpen + m + markClose
		})
	}
	return Marked(s)
}
