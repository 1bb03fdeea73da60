package coach

import (
	"context"
	"sync"
)

// Cache memoizes serialized analysis reports by cache key. Implementations
// must treat failures as misses: the analysis pipeline never blocks on cache
// availability.
type Cache interface {
	// Get returns the cached value for key, or false if absent
	Get(ctx context.Context, key string) (string, bool)
	// Set stores value under key, replacing any existing entry
	Set(ctx context.Context, key, value string)
}

// MemoryCache is a process-local Cache for single-instance deployments and
// tests.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCache creates an empty in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

// Get implements Cache
func (c *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.entries[key]
	return value, ok
}

// Set implements Cache
func (c *MemoryCache) Set(_ context.Context, key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Len reports the number of cached entries
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
