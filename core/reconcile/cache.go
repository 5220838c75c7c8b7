package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedIndex is an AssetIndex together with its build time.
type cachedIndex struct {
	index *AssetIndex
	built time.Time
}

// IndexCache holds asset indices keyed by their discovery source so that
// repeated requests against the same storage prefix share one listing.
type IndexCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cachedIndex
	sf      singleflight.Group
}

// NewIndexCache creates a cache whose entries expire after ttl.
// A zero ttl disables caching: every call rebuilds.
func NewIndexCache(ttl time.Duration) *IndexCache {
	return &IndexCache{
		ttl:     ttl,
		entries: make(map[string]cachedIndex),
	}
}

func (c *IndexCache) fresh(key string) (*AssetIndex, bool) {
	if c.ttl == 0 {
		return nil, false
	}
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Since(entry.built) > c.ttl {
		return nil, false
	}
	return entry.index, true
}

// GetOrBuild returns the cached index for key, or builds it with build.
// Concurrent callers for the same key share a single build.
func (c *IndexCache) GetOrBuild(ctx context.Context, key string, build func(context.Context) (*AssetIndex, error)) (*AssetIndex, error) {
	if index, ok := c.fresh(key); ok {
		return index, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		if index, ok := c.fresh(key); ok {
			return index, nil
		}

		index, err := build(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = cachedIndex{index: index, built: time.Now()}
		c.mu.Unlock()

		return index, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*AssetIndex), nil
}

// Invalidate removes the cached index for key.
func (c *IndexCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
