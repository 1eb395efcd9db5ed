package request_models

type PlanRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	PriceMinor     int64  `json:"price_minor" binding:"gte=0"`
	DurationDays   int    `json:"duration_days"`
	PhotoAllowance int    `json:"photo_allowance"`
	DirectContact  bool   `json:"direct_contact"`
	Featured       bool   `json:"featured"`
	Active         *bool  `json:"active"`
}
