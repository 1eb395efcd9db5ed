package request_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResetRestoresDefaults(t *testing.T) {
	min := 10.0
	filters := ListingFilters{
		Query:     "bike",
		StateCode: "SP",
		City:      "Campinas",
		MinPrice:  &min,
		Sort:      SortPriceDesc,
		Limit:     5,
	}

	filters.Reset()

	assert.Equal(t, DefaultListingFilters(), filters)
	assert.Empty(t, filters.Query)
	assert.Nil(t, filters.MinPrice)
	assert.Equal(t, SortNewest, filters.Sort)
}

func TestResetIsIdempotent(t *testing.T) {
	filters := ListingFilters{Query: "bike"}

	filters.Reset()
	once := filters
	filters.Reset()

	assert.Equal(t, once, filters)
}

func TestNormalizeFillsOnlyUnsetFields(t *testing.T) {
	filters := ListingFilters{Query: "bike", Sort: SortPriceAsc}
	filters.Normalize()

	assert.Equal(t, "bike", filters.Query)
	assert.Equal(t, SortPriceAsc, filters.Sort)
	assert.Equal(t, DefaultListingFilters().Limit, filters.Limit)

	bad := ListingFilters{Sort: SortKey("price_weird"), Limit: -1}
	bad.Normalize()
	assert.Equal(t, SortNewest, bad.Sort)
	assert.Equal(t, DefaultListingFilters().Limit, bad.Limit)
}
