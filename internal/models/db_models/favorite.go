package db_models

import "github.com/google/uuid"

type Favorite struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_fav_user_listing" json:"user_id"`
	ListingID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_fav_user_listing" json:"listing_id"`

	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}
