package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is one seat occupancy for a plan period. Dates are ISO
// YYYY-MM-DD strings so lexical comparison matches calendar order.
type Subscription struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Seat      int       `gorm:"not null" json:"seat"`
	StartDate string    `gorm:"size:10;not null" json:"start_date"`
	EndDate   string    `gorm:"size:10;not null" json:"end_date"`
	Months    int       `gorm:"not null" json:"months"`
	Status    string    `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`

	// Slots are copied from the originating quote at creation time; the
	// quote reference is kept so the linkage survives duplicate emails.
	QuoteID *uuid.UUID `gorm:"type:uuid" json:"quote_id,omitempty"`
	Slots   SlotList   `gorm:"type:jsonb;not null;default:'[]'" json:"slots"`

	BaseAmount      int    `gorm:"not null" json:"base_amount"`
	DiscountPercent int    `gorm:"not null" json:"discount_percent"`
	DiscountAmount  int    `gorm:"not null" json:"discount_amount"`
	FinalAmount     int    `gorm:"not null" json:"final_amount"`
	PaidAmount      int    `gorm:"not null" json:"paid_amount"`
	PaymentMode     string `gorm:"size:30" json:"payment_mode"`
	PaymentStatus   string `gorm:"size:20" json:"payment_status"`

	StudentName  string `gorm:"size:255" json:"student_name"`
	StudentPhone string `gorm:"size:30" json:"student_phone"`
	IDProofType  string `gorm:"size:50" json:"id_proof_type"`
	IDProofURL   string `gorm:"size:255" json:"id_proof_url"`

	FreezeDaysAllowed int    `gorm:"not null;default:0" json:"freeze_days_allowed"`
	FreezeDaysUsed    int    `gorm:"not null;default:0" json:"freeze_days_used"`
	OriginalEndDate   string `gorm:"size:10" json:"original_end_date"`

	SeatChangeAllowed int `gorm:"not null;default:0" json:"seat_change_allowed"`
	SeatChangeUsed    int `gorm:"not null;default:0" json:"seat_change_used"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
