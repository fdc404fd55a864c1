package index

import (
	"github.com/robofolio/robofolio/internal/search/query"
)

// MaxResults is the maximum number of entries returned by Search.
const MaxResults = 10

// Search returns the first MaxResults entries (in index order) whose text contains every
// query term. Queries that are too short, or have no terms, match nothing.
func (i *Index) Search(q query.Query) []Entry {
	if !q.Searchable() {
		return nil
	}
	var results []Entry
	for _, e := range i.Entries() {
		if q.Match(e.Text()) {
			results = append(results, e)
			if len(results) == MaxResults {
				break
			}
		}
	}
	return results
}
