// Package search implements the site search box: loading the search index, filtering it
// for a query, rendering highlighted results, and keyboard navigation over them.
package search

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/robofolio/robofolio/internal/search/index"
	"github.com/robofolio/robofolio/internal/search/query"
)

// LoadFunc loads a search index.
type LoadFunc func(ctx context.Context) (*index.Index, error)

// Options configure a Search.
type Options struct {
	Delay  time.Duration // input debounce delay, DefaultDelay if zero
	Logger *log.Logger   // defaults to the standard logger
}

// Search is the state of one search box: the loaded index, the rendered results, and the
// keyboard selection over them. All methods are safe to call on a nil *Search, which does
// nothing.
type Search struct {
	ui       UI
	logger   *log.Logger
	debounce *debouncer

	mu     sync.Mutex
	idx    *index.Index // nil until loaded
	panel  Panel        // last rendered results
	cursor int          // selected item in panel, or -1
}

// New returns a Search that draws on ui. If ui is nil there is nothing to search from or
// draw on, and New returns nil.
func New(ui UI, opt Options) *Search {
	if ui == nil {
		return nil
	}
	if opt.Delay <= 0 {
		opt.Delay = DefaultDelay
	}
	return &Search{
		ui:       ui,
		logger:   opt.Logger,
		debounce: newDebouncer(opt.Delay),
		cursor:   -1,
	}
}

func (s *Search) logf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	} else {
		log.Printf(format, args...)
	}
}

// Start loads the index in the background and returns immediately. Until the load
// completes, searches see an empty index. The returned channel is closed once the load has
// finished, successfully or not.
func (s *Search) Start(ctx context.Context, load LoadFunc) <-chan struct{} {
	done := make(chan struct{})
	if s == nil {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		s.Load(ctx, load)
	}()
	return done
}

// Load loads the index and blocks until done. A failed load is logged and leaves the index
// empty for the life of the Search; it is not retried.
func (s *Search) Load(ctx context.Context, load LoadFunc) {
	if s == nil {
		return
	}
	idx, err := load(ctx)
	if err != nil {
		s.logf("# Failed to load search index: %s", err)
		return
	}
	s.mu.Lock()
	s.idx = idx
	s.mu.Unlock()
}

// Loaded reports whether an index has been loaded.
func (s *Search) Loaded() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx != nil
}

// Search returns the index entries matching queryStr (at most index.MaxResults, in index
// order). Queries shorter than query.MinLength return nothing.
func (s *Search) Search(queryStr string) []index.Entry {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search(queryStr)
}

func (s *Search) search(queryStr string) []index.Entry {
	return s.idx.Search(query.Parse(queryStr))
}

// Render draws the results for queryStr and reveals the panel. The selection is reset.
func (s *Search) Render(results []index.Entry, queryStr string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.render(results, queryStr)
}

func (s *Search) render(results []index.Entry, queryStr string) {
	s.panel = NewPanel(results, queryStr)
	s.cursor = -1
	s.ui.Draw(s.panel)
	s.ui.Show()
}

// Hide hides the results panel, keeping its content.
func (s *Search) Hide() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui.Hide()
}

// Input handles a change of the query input's value. The query runs once the input has
// been quiet for the debounce delay; only the latest value is searched.
func (s *Search) Input(value string) {
	if s == nil {
		return
	}
	s.debounce.trigger(func() { s.run(value) })
}

func (s *Search) run(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := strings.TrimSpace(value)
	if utf8.RuneCountInString(q) < query.MinLength {
		s.ui.Hide()
		return
	}
	s.render(s.search(q), q)
}

// Close cancels any pending debounced query.
func (s *Search) Close() {
	if s == nil {
		return
	}
	s.debounce.cancel()
}
