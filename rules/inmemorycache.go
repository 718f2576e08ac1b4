package rules

import "sync"

// InMemoryCache is a map-backed CompiledCache.
// Thread-safe for concurrent access
type InMemoryCache[V any] struct {
	entries map[string]V
	order   []string // insertion order, for eviction
	config  CacheConfig
	mu      sync.RWMutex
}

// NewInMemoryCache creates a new in-memory compiled cache
func NewInMemoryCache[V any](config CacheConfig) *InMemoryCache[V] {
	return &InMemoryCache[V]{
		entries: make(map[string]V),
		config:  config,
	}
}

// Get retrieves a cached value
func (c *InMemoryCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[key]
	return v, ok
}

// GetOrCompile returns the cached value or compiles and stores it
func (c *InMemoryCache[V]) GetOrCompile(key string, compile func(string) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	// Compile outside the lock; a concurrent miss on the same key compiles
	// twice and the first store wins.
	v, err := compile(key)
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		return existing, nil
	}
	if c.config.MaxEntries > 0 && len(c.entries) >= c.config.MaxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = v
	c.order = append(c.order, key)
	return v, nil
}

// Invalidate clears the cache
func (c *InMemoryCache[V]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]V)
	c.order = nil
}

// Len returns the number of cached entries
func (c *InMemoryCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
