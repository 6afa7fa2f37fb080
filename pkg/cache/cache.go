// Package cache provides a thread-safe LRU cache for compiled patterns.
//
// The cache is used by the GoDeriv facade when the WithCaching option is
// enabled. It avoids re-parsing the same pattern string on every call,
// which is especially valuable when the same pattern is matched against
// many different texts. Evicting a pattern releases its canonicalization
// store along with it, so the cache capacity is also the bound on retained
// derivative memory.
//
// # Example
//
//	c := cache.New(1024)
//	p, err := c.GetOrCompile("(a|b)*c", compile)
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/goderiv/goderiv/pkg/types"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 256

// Cache is a thread-safe LRU (Least Recently Used) cache of compiled
// patterns keyed by their source text. Once the capacity is reached, the
// least recently accessed entry is evicted.
//
// Safe for concurrent use by multiple goroutines.
type Cache struct {
	capacity int
	patterns *lru.Cache[string, *types.Pattern]
}

// New creates a new LRU cache with the given capacity.
// capacity must be > 0; if <= 0, DefaultCapacity is used.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	// lru.New only fails on a non-positive size, which is excluded above.
	patterns, _ := lru.New[string, *types.Pattern](capacity)
	return &Cache{
		capacity: capacity,
		patterns: patterns,
	}
}

// Get retrieves a compiled pattern from the cache.
// Returns (pattern, true) if found and marks the entry most recently used.
func (c *Cache) Get(key string) (*types.Pattern, bool) {
	return c.patterns.Get(key)
}

// Set inserts or replaces a pattern in the cache, evicting the least
// recently used entry if at capacity.
func (c *Cache) Set(key string, p *types.Pattern) {
	c.patterns.Add(key, p)
}

// GetOrCompile retrieves the pattern for key from cache, or calls compile()
// to create it, caches the result, and returns it.
// Errors are not cached: a failing key is re-compiled on the next call.
func (c *Cache) GetOrCompile(key string, compile func() (*types.Pattern, error)) (*types.Pattern, error) {
	if p, ok := c.patterns.Get(key); ok {
		return p, nil
	}
	p, err := compile()
	if err != nil {
		return nil, err
	}
	c.patterns.Add(key, p)
	return p, nil
}

// Len returns the number of entries currently in the cache.
func (c *Cache) Len() int {
	return c.patterns.Len()
}

// Capacity returns the maximum number of entries the cache can hold.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Invalidate removes a single entry from the cache.
func (c *Cache) Invalidate(key string) {
	c.patterns.Remove(key)
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.patterns.Purge()
}
