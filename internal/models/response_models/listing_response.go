package response_models

import "anuncia/internal/models/db_models"

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	// Derived marks categories reconstructed from listing rows because the
	// canonical table had none; derived entries are display-only.
	Derived bool `json:"derived,omitempty"`
}

// SearchResponse is the search screen payload: result rows, the category
// strip, and the filter block echoed back so the client can mirror it into
// the URL.
type SearchResponse struct {
	Listings   []db_models.Listing `json:"listings"`
	Categories []CategoryResponse  `json:"categories"`
	Filters    FilterEcho          `json:"filters"`
	NoResults  bool                `json:"no_results"`
}

type FilterEcho struct {
	Query    string   `json:"q,omitempty"`
	Category string   `json:"category,omitempty"`
	Seller   string   `json:"seller,omitempty"`
	State    string   `json:"state,omitempty"`
	City     string   `json:"city,omitempty"`
	Location string   `json:"location,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
	// Kind is echoed but never applied while the sale/rent migration is
	// pending on the backend; see listing_repository.go.
	Kind string `json:"kind,omitempty"`
	Sort string `json:"sort"`
}
