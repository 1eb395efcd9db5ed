package memcache

import (
	"sync"

	"anuncia/internal/models/db_models"
)

// CategoryCache holds the canonical category list between change
// notifications. An unloaded cache always misses.
type CategoryCache struct {
	mu         sync.RWMutex
	categories []db_models.Category
	loaded     bool
}

func NewCategoryCache() *CategoryCache {
	return &CategoryCache{}
}

func (c *CategoryCache) Get() ([]db_models.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return nil, false
	}
	out := make([]db_models.Category, len(c.categories))
	copy(out, c.categories)
	return out, true
}

func (c *CategoryCache) Set(categories []db_models.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories = make([]db_models.Category, len(categories))
	copy(c.categories, categories)
	c.loaded = true
}

// Invalidate drops the snapshot; the next Get misses and forces a re-fetch.
func (c *CategoryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories = nil
	c.loaded = false
}
