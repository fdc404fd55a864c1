package main

import (
	"log"
	"net/http"
	"sync"
	"time"
)

const fileSystemCacheTTL = 5 * time.Minute

// cachedFileSystem wraps and caches an http.FileSystem. Once the cached file system is older
// than fileSystemCacheTTL it is still served while one background fetch replaces it.
type cachedFileSystem struct {
	fetch func() (http.FileSystem, error)
	now   func() time.Time

	mu      sync.Mutex
	fs      http.FileSystem
	refresh *sync.Once
	at      time.Time
}

func newCachedFileSystem(fetch func() (http.FileSystem, error)) *cachedFileSystem {
	return &cachedFileSystem{fetch: fetch, now: time.Now, refresh: new(sync.Once)}
}

func (c *cachedFileSystem) fetchAndCache() (http.FileSystem, error) {
	fs, err := c.fetch()
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.refresh = new(sync.Once) // retry on the next expired get
		return nil, err
	}
	c.store(fs)
	return fs, nil
}

func (c *cachedFileSystem) store(fs http.FileSystem) {
	c.fs = fs
	c.refresh = new(sync.Once) // reset sync.Once so it can be refreshed next time when needed
	c.at = c.now()
}

func (c *cachedFileSystem) get() (http.FileSystem, error) {
	c.mu.Lock()
	fs := c.fs
	if fs != nil && c.now().Sub(c.at) > fileSystemCacheTTL {
		log.Printf("# Cached site data expired after %s, refreshing in background", fileSystemCacheTTL)
		refresh := c.refresh
		go refresh.Do(func() {
			if _, err := c.fetchAndCache(); err != nil {
				log.Printf("# Error refreshing site data in background: %s", err)
			}
		})
	}
	c.mu.Unlock()
	if fs != nil {
		return fs, nil
	}
	return c.fetchAndCache()
}

func (c *cachedFileSystem) Open(name string) (http.File, error) {
	fs, err := c.get()
	if err != nil {
		return nil, err
	}
	return fs.Open(name)
}
