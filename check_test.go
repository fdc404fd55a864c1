package robofolio

import (
	"context"
	"reflect"
	"regexp"
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	const validIndex = `[{"title": "A", "content": "", "url": "/a/", "type": "post"}]`
	tests := map[string]struct {
		files        map[string]string
		ignore       string
		wantProblems []string
	}{
		"valid site": {
			files:        testSiteFiles(),
			wantProblems: nil,
		},
		"valid links": {
			files: map[string]string{
				"search.json":  validIndex,
				"index.html":   `<a href="a/">a</a> <a href="/a">a</a> <a href="a/index.html">a</a> <img src="i.gif">`,
				"a/index.html": `<a href="../">up</a> <a href="#top">top</a> <a href="?page=2">next</a> <a href="https://example.com/x">ext</a> <a href="mailto:team@example.com">mail</a>`,
				"i.gif":        string(gifData),
			},
			wantProblems: nil,
		},
		"broken link": {
			files: map[string]string{
				"search.json":  validIndex,
				"a/index.html": `<a href="../b/">b</a> <img src="/img/missing.png">`,
			},
			wantProblems: []string{
				"a/index.html: broken link to ../b/",
				"a/index.html: broken link to /img/missing.png",
			},
		},
		"ignored link": {
			files: map[string]string{
				"search.json":  validIndex,
				"a/index.html": `<a href="/private/x">b</a>`,
			},
			ignore:       `^/private/`,
			wantProblems: nil,
		},
		"incomplete index entries": {
			files: map[string]string{
				"search.json":  `[{"title": "A", "url": "/a/"}, {"content": "x", "type": "post"}]`,
				"a/index.html": "a",
			},
			wantProblems: []string{
				"/search.json: entry 0 (/a/): missing type",
				"/search.json: entry 1: missing title",
				"/search.json: entry 1: missing url",
			},
		},
		"index entry for missing page": {
			files: map[string]string{
				"search.json": `[{"title": "Gone", "url": "/gone/", "type": "post"}]`,
			},
			wantProblems: []string{"/search.json: entry 0 (/gone/): broken URL /gone/"},
		},
		"missing index": {
			files:        map[string]string{"index.html": "x"},
			wantProblems: []string{"/search.json: search index not found"},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			site := newTestSite(test.files)
			if test.ignore != "" {
				site.CheckIgnoreURLPattern = regexp.MustCompile(test.ignore)
			}
			problems, err := site.Check(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			problemsSet := toSet(problems)
			wantProblemsSet := toSet(test.wantProblems)
			if !reflect.DeepEqual(problemsSet, wantProblemsSet) {
				t.Errorf("got problems %v, want %v", problemsSet, wantProblemsSet)
			}
		})
	}

	t.Run("invalid index", func(t *testing.T) {
		site := newTestSite(map[string]string{"search.json": "{"})
		problems, err := site.Check(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if len(problems) != 1 || !strings.HasPrefix(problems[0], "/search.json: open /search.json: decode search index") {
			t.Errorf("got problems %q, want one index decode problem", problems)
		}
	})
}

func toSet(s []string) map[string]struct{} {
	m := make(map[string]struct{}, len(s))
	for _, v := range s {
		m[v] = struct{}{}
	}
	return m
}
