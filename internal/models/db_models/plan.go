package db_models

type Plan struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex" json:"slug"`
	Description string `json:"description"`
	// PriceMinor is in minor currency units (centavos).
	PriceMinor     int64 `json:"price_minor"`
	DurationDays   int   `gorm:"default:30" json:"duration_days"`
	PhotoAllowance int   `gorm:"default:1" json:"photo_allowance"`
	DirectContact  bool  `gorm:"default:false" json:"direct_contact"`
	Featured       bool  `gorm:"default:false" json:"featured"`
	Active         bool  `gorm:"default:true" json:"active"`
	// CheckoutURL is the hosted payment link minted by the external
	// provider; empty until generated.
	CheckoutURL *string `json:"checkout_url,omitempty"`
}
