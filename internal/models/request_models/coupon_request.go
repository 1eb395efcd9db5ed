package request_models

type CouponRequest struct {
	Code            string `json:"code" binding:"required"`
	Description     string `json:"description"`
	DiscountPercent int    `json:"discount_percent" binding:"required"`
	UsageLimit      *int   `json:"usage_limit"`
	ExpiresAt       *int64 `json:"expires_at"`
	Active          *bool  `json:"active"`
}
