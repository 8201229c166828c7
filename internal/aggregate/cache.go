package aggregate

import (
	"context"
	"sync"

	"github.com/jonathan/rankbuddy/internal/types"
)

// Cache holds the pool for the most recent seed phrase. It is an explicit
// object owned by the caller, keyed by normalized seed: a lookup with the
// same seed reuses the computed pool, a lookup with a different seed
// invalidates and rebuilds. There is no other state.
type Cache struct {
	mu sync.Mutex

	agg      *Aggregator
	seed     string
	pool     *types.KeywordPool
	warnings []Warning
}

// NewCache creates a cache in the absent state.
func NewCache(agg *Aggregator) *Cache {
	return &Cache{agg: agg}
}

// Get returns the pool for the seed, aggregating only when the normalized
// seed differs from the cached key.
func (c *Cache) Get(ctx context.Context, seed string) (*types.KeywordPool, []Warning, error) {
	if err := types.ValidateSeed(seed); err != nil {
		return nil, nil, err
	}
	normalized := types.NormalizeKeyword(seed)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pool != nil && c.seed == normalized {
		return c.pool, c.warnings, nil
	}

	pool, warnings, err := c.agg.Aggregate(ctx, seed)
	if err != nil {
		return nil, nil, err
	}
	c.seed = normalized
	c.pool = pool
	c.warnings = warnings
	return pool, warnings, nil
}

// Invalidate clears the cached pool, forcing the next Get to aggregate.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seed = ""
	c.pool = nil
	c.warnings = nil
}
