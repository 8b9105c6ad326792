package cache

import (
	"fmt"
	"sync"

	"github.com/TFMV/cyclomatic/types"
	"github.com/golang/groupcache/lru"
)

// ResultCache caches analysis reports keyed by language and a rolling hash
// of the source text, so identical snippets are scored once.
type ResultCache struct {
	cache *lru.Cache
	mu    sync.RWMutex // Mutex for thread safety
}

// NewResultCache creates a ResultCache holding at most size entries.
func NewResultCache(size int) *ResultCache {
	return &ResultCache{
		cache: lru.New(size),
	}
}

// Get returns the cached report for the snippet, if available. A hit
// updates the LRU recency list, so lookups take the write lock.
func (c *ResultCache) Get(language, code string) (types.Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if val, ok := c.cache.Get(key(language, code)); ok {
		return val.(types.Report), true
	}
	return types.Report{}, false
}

// Put stores the report for the snippet.
func (c *ResultCache) Put(language, code string, report types.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(key(language, code), report)
}

// Clear drops every cached entry.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Clear()
}

func key(language, code string) lru.Key {
	return fmt.Sprintf("%s:%016x", language, codeHash(code))
}

// codeHash generates a hash for a given snippet.
func codeHash(code string) uint64 {
	const primeBase = 31
	var hash uint64
	for _, ch := range code {
		hash = hash*primeBase + uint64(ch)
	}
	return hash
}
