package db_models

import "github.com/google/uuid"

// Message is the contact handoff record: the conversation itself continues
// on whatever channel the listing's contact payload points at.
type Message struct {
	BaseModel
	ListingID   uuid.UUID `gorm:"type:uuid;index" json:"listing_id"`
	SenderID    uuid.UUID `gorm:"type:uuid;index" json:"sender_id"`
	RecipientID uuid.UUID `gorm:"type:uuid;index" json:"recipient_id"`
	Body        string    `gorm:"not null" json:"body"`
}
