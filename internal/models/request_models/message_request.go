package request_models

type MessageRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
	Body      string `json:"body" binding:"required"`
}
