package db_models

type Coupon struct {
	BaseModel
	Code            string `gorm:"uniqueIndex;not null" json:"code"` // stored upper-cased
	Description     string `json:"description"`
	DiscountPercent int    `gorm:"check:discount_percent > 0 AND discount_percent <= 100" json:"discount_percent"`
	UsageLimit      *int   `json:"usage_limit,omitempty"`
	UsedCount       int    `gorm:"default:0" json:"used_count"`
	ExpiresAt       *int64 `json:"expires_at,omitempty"`
	Active          bool   `gorm:"default:true" json:"active"`
}
