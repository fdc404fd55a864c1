package robofolio

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"sync"
	"time"

	"github.com/robofolio/robofolio/internal/search/index"
)

// DefaultTOCSelector is the class of the elements whose headings make up a page's table of
// contents.
const DefaultTOCSelector = "prose"

// Site represents a published portfolio site: its static pages and assets, the search index
// built alongside them, and the templates used for server-rendered fragments.
type Site struct {
	// Root is the file system containing the built site (HTML pages, assets, and the search
	// index).
	Root http.FileSystem

	// Base is the base URL (typically including only the path, such as "/" or "/team/") where the
	// site is available.
	Base *url.URL

	// IndexPath is the path of the search index in Root. It defaults to index.DefaultPath.
	IndexPath string

	// IndexTTL is how long the search index is cached before it is reread from Root. It defaults
	// to index.DefaultCacheTTL.
	IndexTTL time.Duration

	// Templates is the file system containing Go html/template templates that override the
	// built-in rendering of search results. It may be nil.
	Templates http.FileSystem

	// TOCSelector is the class of the elements whose h2 and h3 headings are listed in a page's
	// table of contents. It defaults to DefaultTOCSelector.
	TOCSelector string

	// CheckIgnoreURLPattern is a regexp matching URLs to ignore in the Check method.
	CheckIgnoreURLPattern *regexp.Regexp

	cacheOnce sync.Once
	cache     *index.Cache
}

func (s *Site) basePath() string {
	if s.Base == nil || s.Base.Path == "" {
		return "/"
	}
	return s.Base.Path
}

func (s *Site) indexPath() string {
	if s.IndexPath == "" {
		return index.DefaultPath
	}
	return s.IndexPath
}

func (s *Site) tocSelector() string {
	if s.TOCSelector == "" {
		return DefaultTOCSelector
	}
	return s.TOCSelector
}

// LoadIndex reads and decodes the search index from the site's file system, bypassing the
// cache.
func (s *Site) LoadIndex(ctx context.Context) (*index.Index, error) {
	return index.Open(s.Root, s.indexPath())
}

// Index returns the site's search index, reading it on first use and periodically refreshing
// it afterwards.
func (s *Site) Index(ctx context.Context) (*index.Index, error) {
	s.cacheOnce.Do(func() {
		s.cache = index.NewCache(s.LoadIndex)
		s.cache.TTL = s.IndexTTL
	})
	return s.cache.Get(ctx)
}
