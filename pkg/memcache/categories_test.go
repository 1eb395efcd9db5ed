package memcache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"anuncia/internal/models/db_models"
)

func TestCategoryCacheMissesUntilSet(t *testing.T) {
	cache := NewCategoryCache()

	_, ok := cache.Get()
	assert.False(t, ok)

	cache.Set([]db_models.Category{{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: "Veículos"}})
	got, ok := cache.Get()
	assert.True(t, ok)
	assert.Len(t, got, 1)
}

func TestCategoryCacheEmptyListIsAHit(t *testing.T) {
	// An empty canonical table is a valid cached answer; the derived
	// fallback decision belongs to the service, not the cache.
	cache := NewCategoryCache()
	cache.Set(nil)

	got, ok := cache.Get()
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestCategoryCacheInvalidateForcesRefetch(t *testing.T) {
	cache := NewCategoryCache()
	cache.Set([]db_models.Category{{Name: "Imóveis"}})

	cache.Invalidate()
	_, ok := cache.Get()
	assert.False(t, ok)
}
