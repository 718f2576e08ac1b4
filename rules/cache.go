package rules

// CompiledCache caches compiled rule data (regular expressions, CEL
// programs) keyed by source text, so rules built from the same source share
// one compiled form.
type CompiledCache[V any] interface {
	// GetOrCompile returns the cached value for key, compiling and storing
	// it on a miss. Compilation errors are returned and never cached.
	GetOrCompile(key string, compile func(string) (V, error)) (V, error)

	// Get retrieves a cached value
	Get(key string) (V, bool)

	// Invalidate drops every entry
	Invalidate()

	// Len returns the number of cached entries
	Len() int
}

// CacheConfig holds configuration for cache behavior
type CacheConfig struct {
	// MaxEntries bounds the cache; the oldest entry is evicted first.
	// Set to 0 for no bound.
	MaxEntries int
}

// DefaultCacheConfig returns the defaults used by the package-level caches
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		MaxEntries: 1024,
	}
}
