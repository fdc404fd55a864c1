package robofolio

import (
	"bytes"
	"log"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Handler returns an http.Handler that serves the site.
func (s *Site) Handler() http.Handler {
	m := http.NewServeMux()

	const (
		cacheMaxAge0     = "max-age=0"
		cacheMaxAgeShort = "max-age=60"
		cacheMaxAgeLong  = "max-age=300"
	)
	isNoCacheRequest := func(r *http.Request) bool {
		return r.Header.Get("Cache-Control") == "no-cache"
	}
	setCacheControl := func(w http.ResponseWriter, r *http.Request, cacheControl string) {
		if isNoCacheRequest(r) {
			w.Header().Set("Cache-Control", cacheMaxAge0)
		} else {
			w.Header().Set("Cache-Control", cacheControl)
		}
	}

	basePath := s.basePath()

	// Serve search.
	m.Handle(path.Join(basePath, "search"), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" && r.Method != "HEAD" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		// An unavailable index means no results, not an error page.
		cacheControl := cacheMaxAgeShort
		queryStr := r.URL.Query().Get("q")
		results, err := s.Search(r.Context(), queryStr)
		if err != nil {
			log.Printf("# Search index unavailable: %s", err)
			results = nil
			cacheControl = cacheMaxAge0
		}

		var respData []byte
		if r.Method == "GET" {
			respData, err = s.renderSearchPage(queryStr, results)
			if err != nil {
				w.Header().Set("Cache-Control", cacheMaxAge0)
				http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
				return
			}
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		setCacheControl(w, r, cacheControl)
		if r.Method == "GET" {
			_, _ = w.Write(respData)
		}
	}))

	// Serve pages, assets, and the search index.
	fileServer := http.FileServer(s.Root)
	m.Handle(basePath, http.StripPrefix(strings.TrimSuffix(basePath, "/"), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" && r.Method != "HEAD" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		respData, ok, err := s.pageWithTOC(r.URL.Path)
		if err != nil {
			w.Header().Set("Cache-Control", cacheMaxAge0)
			http.Error(w, "page error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			setCacheControl(w, r, cacheMaxAgeShort)
			if r.Method == "GET" {
				_, _ = w.Write(respData)
			}
			return
		}

		if isPagePath(r.URL.Path) {
			setCacheControl(w, r, cacheMaxAgeShort)
		} else {
			setCacheControl(w, r, cacheMaxAgeLong)
		}
		fileServer.ServeHTTP(noCacheOnError{ResponseWriter: w}, r)
	})))

	return m
}

// noCacheOnError disables caching of error responses.
type noCacheOnError struct {
	http.ResponseWriter
}

func (w noCacheOnError) WriteHeader(code int) {
	if code >= 400 {
		w.Header().Set("Cache-Control", "max-age=0")
	}
	w.ResponseWriter.WriteHeader(code)
}

// isPagePath reports whether the URL path refers to an HTML page (as opposed to an asset or
// the search index).
func isPagePath(urlPath string) bool {
	ext := path.Ext(urlPath)
	return ext == "" || ext == ".html" || strings.HasSuffix(urlPath, "/")
}

// pageFilePath returns the path in the site file system of the HTML page served at urlPath.
func pageFilePath(urlPath string) string {
	p := "/" + strings.TrimPrefix(urlPath, "/")
	if strings.HasSuffix(p, "/") {
		p += "index.html"
	}
	return p
}

// pageWithTOC returns the HTML page at urlPath with its table of contents filled in. If urlPath
// is not an HTML page with a table of contents container, ok is false.
func (s *Site) pageWithTOC(urlPath string) (data []byte, ok bool, err error) {
	filePath := pageFilePath(urlPath)
	if path.Ext(filePath) != ".html" {
		return nil, false, nil
	}
	data, err = ReadFile(s.Root, filePath)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	// Avoid parsing pages that can't have a TOC container.
	if !bytes.Contains(data, []byte(tocContainerID)) {
		return nil, false, nil
	}
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, false, errors.WithMessagef(err, "parse %s", filePath)
	}
	if !InjectTOC(doc, TableOfContents(doc, s.tocSelector())) {
		return nil, false, nil
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, false, errors.WithMessagef(err, "render %s", filePath)
	}
	return buf.Bytes(), true, nil
}
