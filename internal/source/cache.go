package source

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// BodyCache holds fetched export bodies keyed by URL.
type BodyCache struct {
	cache *gocache.Cache
}

// NewBodyCache creates a cache. A cleanupInterval of 0 disables the
// background janitor; expired entries are then ignored on access and
// replaced by the next Set.
func NewBodyCache(defaultTTL, cleanupInterval time.Duration) *BodyCache {
	return &BodyCache{cache: gocache.New(defaultTTL, cleanupInterval)}
}

// Get returns the cached body for url.
func (c *BodyCache) Get(url string) ([]byte, bool) {
	if val, found := c.cache.Get(url); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores body for url with ttl.
func (c *BodyCache) Set(url string, body []byte, ttl time.Duration) {
	c.cache.Set(url, body, ttl)
}

// Delete removes url from the cache.
func (c *BodyCache) Delete(url string) {
	c.cache.Delete(url)
}
