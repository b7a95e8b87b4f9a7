package models

import (
	"time"

	"github.com/google/uuid"
)

// Quote is a short-lived price lock. Expiry is checked lazily at redemption
// time; there is no background reaper.
type Quote struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuoteID string    `gorm:"size:30;not null;unique" json:"quote_id"`

	Slots  SlotList `gorm:"type:jsonb;not null;default:'[]'" json:"slots"`
	Months int      `gorm:"not null" json:"months"`

	BaseAmount      int `gorm:"not null" json:"base_amount"`
	DiscountPercent int `gorm:"not null" json:"discount_percent"`
	DiscountAmount  int `gorm:"not null" json:"discount_amount"`
	FinalAmount     int `gorm:"not null" json:"final_amount"`

	Status    string    `gorm:"size:10;not null;default:'ACTIVE'" json:"status"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
