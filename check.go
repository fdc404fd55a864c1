package robofolio

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// maxCheckRedirects is the number of redirects followed when checking that a URL resolves.
const maxCheckRedirects = 5

// Check checks the site for common problems: search index entries that are incomplete or link
// to missing pages, and pages with broken links.
func (s *Site) Check(ctx context.Context) (problems []string, err error) {
	handler := s.Handler()

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	addProblem := func(problem string) {
		mu.Lock()
		problems = append(problems, problem)
		mu.Unlock()
	}

	// Check the search index.
	indexPath := s.indexPath()
	idx, err := s.LoadIndex(ctx)
	switch {
	case os.IsNotExist(err):
		addProblem(fmt.Sprintf("%s: search index not found", indexPath))
	case err != nil:
		addProblem(fmt.Sprintf("%s: %s", indexPath, err))
	}
	for i, e := range idx.Entries() {
		prefix := fmt.Sprintf("%s: entry %d: ", indexPath, i)
		if e.URL != "" {
			prefix = fmt.Sprintf("%s: entry %d (%s): ", indexPath, i, e.URL)
		}
		for _, field := range []struct{ name, value string }{
			{"title", e.Title},
			{"url", e.URL},
			{"type", e.Type},
		} {
			if field.value == "" {
				addProblem(prefix + "missing " + field.name)
			}
		}
		if e.URL != "" && !s.resolves(handler, e.URL) {
			addProblem(prefix + "broken URL " + e.URL)
		}
	}

	// Check the pages.
	err = WalkFileSystem(s.Root, isHTMLPage, func(filePath string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := ReadFile(s.Root, "/"+filePath)
		if err != nil {
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, p := range s.checkPage(handler, filePath, data) {
				addProblem(filePath + ": " + p)
			}
		}()
		return nil
	})
	wg.Wait()
	if err != nil {
		return nil, err
	}
	return problems, nil
}

// pageURL returns the URL where the page at filePath is served.
func (s *Site) pageURL(filePath string) *url.URL {
	return &url.URL{Path: path.Join(s.basePath(), filePath)}
}

func (s *Site) checkPage(handler http.Handler, filePath string, data []byte) (problems []string) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return []string{err.Error()}
	}

	// Find broken links.
	pageURL := s.pageURL(filePath)
	walkOpt := walkHTMLDocumentOptions{
		url: func(urlStr string) {
			if s.CheckIgnoreURLPattern != nil && s.CheckIgnoreURLPattern.MatchString(urlStr) {
				return
			}

			u, err := url.Parse(urlStr)
			if err != nil {
				problems = append(problems, fmt.Sprintf("invalid URL %q", urlStr))
				return
			}
			if u.Scheme != "" || u.Host != "" {
				return // external
			}
			if u.Path == "" {
				return // fragment or query on the same page
			}

			if target := pageURL.ResolveReference(u); !s.resolves(handler, target.Path) {
				problems = append(problems, fmt.Sprintf("broken link to %s", urlStr))
			}
		},
	}
	walkHTMLDocument(doc, walkOpt)

	return problems
}

// resolves reports whether handler serves urlStr, following redirects, with HTTP 200.
func (s *Site) resolves(handler http.Handler, urlStr string) bool {
	for i := 0; i <= maxCheckRedirects; i++ {
		req, err := http.NewRequest("HEAD", urlStr, nil)
		if err != nil {
			return false
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		switch rr.Code {
		case http.StatusOK:
			return true
		case http.StatusMovedPermanently, http.StatusFound, http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
			loc, err := req.URL.Parse(rr.Header().Get("Location"))
			if err != nil {
				return false
			}
			urlStr = loc.String()
		default:
			return false
		}
	}
	return false
}

type walkHTMLDocumentOptions struct {
	url func(url string) // called for each URL encountered
}

func walkHTMLDocument(node *html.Node, opt walkHTMLDocumentOptions) {
	if node.Type == html.ElementNode {
		switch node.DataAtom {
		case atom.A:
			if href, ok := getAttribute(node, "href"); ok {
				opt.url(href)
			}
		case atom.Img:
			if src, ok := getAttribute(node, "src"); ok {
				opt.url(src)
			}
		}
	}

	for c := node.FirstChild; c != nil; c = c.NextSibling {
		walkHTMLDocument(c, opt)
	}
}
