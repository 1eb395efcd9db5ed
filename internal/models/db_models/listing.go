package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ListingType string

const (
	ListingTypeGrid   ListingType = "grid"
	ListingTypeHeader ListingType = "header"
	ListingTypeFooter ListingType = "footer"
)

type ListingKind string

const (
	ListingKindSale ListingKind = "sale"
	ListingKindRent ListingKind = "rent"
)

type ListingStatus string

const (
	ListingStatusActive   ListingStatus = "active"
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusExpired  ListingStatus = "expired"
	ListingStatusRejected ListingStatus = "rejected"
	ListingStatusPaused   ListingStatus = "paused"
)

type Listing struct {
	BaseModel
	OwnerID    uuid.UUID  `gorm:"type:uuid;index" json:"owner_id"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`

	Type   ListingType   `gorm:"size:16;index;default:'grid'" json:"type"`
	Kind   ListingKind   `gorm:"size:16;default:'sale'" json:"kind"`
	Status ListingStatus `gorm:"size:16;index;default:'pending'" json:"status"`

	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	Price       float64 `gorm:"check:price >= 0" json:"price"`
	Location    string  `json:"location"`

	// Contact is whatever the owner chose to expose (phone, whatsapp,
	// email, external link); the server never interprets it.
	Contact datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"contact"`

	PlanID *uuid.UUID `gorm:"type:uuid" json:"plan_id,omitempty"`

	ValidFrom  int64  `gorm:"not null" json:"valid_from"`
	ValidUntil *int64 `json:"valid_until,omitempty"`

	ViewCount      int64 `gorm:"default:0" json:"view_count"`
	ExposureCount  int64 `gorm:"default:0" json:"exposure_count"`
	ExposureBudget int64 `gorm:"default:0" json:"exposure_budget"`
	Approved       bool  `gorm:"default:false" json:"approved"`

	Photos   []ListingPhoto `gorm:"foreignKey:ListingID" json:"photos"`
	Category *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Plan     *Plan          `gorm:"foreignKey:PlanID" json:"-"`
}

type ListingPhoto struct {
	BaseModel
	ListingID uuid.UUID `gorm:"type:uuid;index" json:"listing_id"`
	URL       string    `gorm:"not null" json:"url"`
	Position  int       `gorm:"default:0" json:"position"`
}

// PubliclyVisible reports whether the listing may be served on any public
// surface: active status and an open validity window.
func (l *Listing) PubliclyVisible(now time.Time) bool {
	if l.Status != ListingStatusActive {
		return false
	}
	if l.ValidUntil != nil && *l.ValidUntil <= now.Unix() {
		return false
	}
	return true
}

// FooterEligible adds the sponsor constraints on top of public visibility:
// moderation approval and remaining exposure budget.
func (l *Listing) FooterEligible(now time.Time) bool {
	return l.PubliclyVisible(now) &&
		l.Type == ListingTypeFooter &&
		l.Approved &&
		l.ExposureCount < l.ExposureBudget
}

// ExposureExhausted is checked again at selection time by the rotation
// engine; the authoritative counter lives in the database.
func (l *Listing) ExposureExhausted() bool {
	return l.ExposureCount >= l.ExposureBudget
}
