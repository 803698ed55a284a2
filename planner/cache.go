// Package planner - opt-in memoization of analysis runs.
//
// A run is a pure function of (Params, Options), so caching by that pair
// is semantically free. The cache is a plain RWMutex-guarded map: the key
// space a single process ever touches is tiny (slider-sized n, a handful
// of thresholds and seeds), so eviction machinery would be dead weight.
package planner

import (
	"sync"

	"github.com/routelab/hamroute/spatial"
)

// cacheKey is the full identity of a memoized run.
type cacheKey struct {
	params Params
	opts   Options
}

// Cache memoizes Run results. The zero value is not usable; create one
// with NewCache. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]Result
}

// NewCache returns an empty run cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]Result)}
}

// Run returns the memoized Result for p, computing and storing it on the
// first request. Failed runs are not cached, so transient refusals do not
// poison the map.
func (c *Cache) Run(p Params, opts ...Option) (Result, error) {
	o := Options{Bounds: spatial.UnitBounds}
	for _, opt := range opts {
		opt(&o)
	}
	key := cacheKey{params: p, opts: o}

	c.mu.RLock()
	res, hit := c.entries[key]
	c.mu.RUnlock()
	if hit {
		return res, nil
	}

	res, err := run(p, o)
	if err != nil {
		return Result{}, err
	}

	c.mu.Lock()
	c.entries[key] = res
	c.mu.Unlock()

	return res, nil
}

// Len reports how many runs are currently memoized.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}