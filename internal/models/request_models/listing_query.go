package request_models

import "anuncia/internal/models/db_models"

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
)

func (s SortKey) Valid() bool {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// ListingFilters mirrors the search screen's URL query string: every field
// is optional and independently settable, absence means "no filter".
type ListingFilters struct {
	Query      string               `form:"q"`
	CategoryID string               `form:"category"`
	SellerID   string               `form:"seller"`
	StateCode  string               `form:"state"`
	City       string               `form:"city"`
	Location   string               `form:"location"`
	MinPrice   *float64             `form:"min_price"`
	MaxPrice   *float64             `form:"max_price"`
	Kind       db_models.ListingKind `form:"kind"`
	Sort       SortKey              `form:"sort"`
	Limit      int                  `form:"limit"`
}

const defaultLimit = 60

// DefaultListingFilters is the cleared-filter state.
func DefaultListingFilters() ListingFilters {
	return ListingFilters{Sort: SortNewest, Limit: defaultLimit}
}

// Reset restores the documented defaults. Calling it on an already-clear
// filter set is a no-op.
func (f *ListingFilters) Reset() {
	*f = DefaultListingFilters()
}

// Normalize fills unset fields with defaults without touching set ones.
func (f *ListingFilters) Normalize() {
	if !f.Sort.Valid() {
		f.Sort = SortNewest
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = defaultLimit
	}
}
