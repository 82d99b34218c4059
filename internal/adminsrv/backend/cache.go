package backend

import (
	"strings"
	"sync"
	"time"
)

// responseCache is a TTL cache for GET response bodies, keyed by endpoint
// path plus encoded query. Non-GET requests bypass it entirely and invalidate
// cached entries under the mutated path so a mutation is never followed by a
// stale read.
type responseCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	body    []byte
	expires time.Time
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// get returns the cached body for the key if present and not expired.
func (c *responseCache) get(key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expires) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.body, true
}

// put stores a body under the key.
func (c *responseCache) put(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{
		body:    body,
		expires: time.Now().Add(c.ttl),
	}
}

// invalidatePath drops every entry whose key is the path itself or a query
// over it.
func (c *responseCache) invalidatePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key == path || strings.HasPrefix(key, path+"?") {
			delete(c.entries, key)
		}
	}
}
