package robofolio

import (
	"bytes"
	"context"
	"strings"
	"unicode/utf8"

	"github.com/robofolio/robofolio/internal/search"
	"github.com/robofolio/robofolio/internal/search/index"
	"github.com/robofolio/robofolio/internal/search/query"
)

// Search searches the site's index for a query. It returns at most index.MaxResults entries,
// in index order.
func (s *Site) Search(ctx context.Context, queryStr string) ([]index.Entry, error) {
	idx, err := s.Index(ctx)
	if err != nil {
		return nil, err
	}
	return idx.Search(query.Parse(queryStr)), nil
}

// searchPageData is the data available to the search.html template.
type searchPageData struct {
	search.Panel

	// Hidden is set when the query is too short to search, in which case the results panel is
	// not shown at all.
	Hidden bool
}

func (s *Site) renderSearchPage(queryStr string, results []index.Entry) ([]byte, error) {
	tmpl, err := s.getTemplate(searchTemplateName, defaultSearchTemplate)
	if err != nil {
		return nil, err
	}

	queryStr = strings.TrimSpace(queryStr)
	data := searchPageData{
		Panel:  search.NewPanel(results, queryStr),
		Hidden: utf8.RuneCountInString(queryStr) < query.MinLength,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
