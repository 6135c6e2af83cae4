package locale

import "sync"

type cacheKey struct {
	date   string
	locale string
}

// DateCache memoizes formatted dates per (date, locale) pair.
// Entries are never evicted. It is safe for concurrent use.
type DateCache struct {
	mu      sync.Mutex
	entries map[cacheKey]string
}

// NewDateCache creates an empty cache.
func NewDateCache() *DateCache {
	return &DateCache{entries: make(map[cacheKey]string)}
}

// GetOrCompute returns the cached string for (date, locale), calling
// compute and storing its result on a miss. The lookup and store happen
// under one lock.
func (c *DateCache) GetOrCompute(date, locale string, compute func() string) string {
	key := cacheKey{date: date, locale: locale}

	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.entries[key]; ok {
		return s
	}
	s := compute()
	c.entries[key] = s
	return s
}

// Len returns the number of cached entries.
func (c *DateCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
