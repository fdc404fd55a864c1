package index

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a Cache serves an index before refreshing it.
const DefaultCacheTTL = 5 * time.Minute

// Cache wraps and caches a loaded index. Once the cached index is older than TTL it is still
// served while a single background refresh replaces it. A failed refresh keeps the stale index
// and is retried by the next Get.
type Cache struct {
	load func(context.Context) (*Index, error)

	TTL    time.Duration // defaults to DefaultCacheTTL
	Logger *log.Logger   // defaults to the standard logger

	now func() time.Time

	mu      sync.Mutex
	idx     *Index
	refresh *sync.Once
	at      time.Time
}

// NewCache returns a cache that obtains the index by calling load.
func NewCache(load func(context.Context) (*Index, error)) *Cache {
	return &Cache{load: load, refresh: new(sync.Once), now: time.Now}
}

func (c *Cache) ttl() time.Duration {
	if c.TTL <= 0 {
		return DefaultCacheTTL
	}
	return c.TTL
}

func (c *Cache) logf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	} else {
		log.Printf(format, args...)
	}
}

func (c *Cache) fetchAndCache(ctx context.Context) (*Index, error) {
	idx, err := c.load(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.refresh = new(sync.Once) // the next expired Get tries again
		return nil, err
	}
	c.store(idx)
	return idx, nil
}

func (c *Cache) store(idx *Index) {
	c.idx = idx
	c.refresh = new(sync.Once) // reset so the next expiry can refresh again
	c.at = c.now()
}

// Get returns the cached index, loading it first if nothing is cached yet.
func (c *Cache) Get(ctx context.Context) (*Index, error) {
	c.mu.Lock()
	idx := c.idx
	if idx != nil && c.now().Sub(c.at) > c.ttl() {
		c.logf("# Cached search index expired after %s, refreshing in background", c.ttl())
		refresh := c.refresh
		go refresh.Do(func() {
			// Separate context because this outlives the request that triggered it.
			if _, err := c.fetchAndCache(context.Background()); err != nil {
				c.logf("# Error refreshing search index in background: %s", err)
			}
		})
	}
	c.mu.Unlock()
	if idx != nil {
		return idx, nil
	}
	return c.fetchAndCache(ctx)
}
