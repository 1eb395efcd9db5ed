package request_models

import "encoding/json"

type CreateListingRequest struct {
	CategoryID  string          `json:"category_id"`
	Type        string          `json:"type"`
	Kind        string          `json:"kind"`
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Price       float64         `json:"price" binding:"gte=0"`
	Location    string          `json:"location"`
	Contact     json.RawMessage `json:"contact"`
	PlanID      string          `json:"plan_id"`
	ValidUntil  *int64          `json:"valid_until"`
	Photos      []string        `json:"photos"`
}

type UpdateListingRequest struct {
	CategoryID  *string          `json:"category_id"`
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *float64         `json:"price"`
	Location    *string          `json:"location"`
	Contact     *json.RawMessage `json:"contact"`
	ValidUntil  *int64           `json:"valid_until"`
}
