package models

import (
	"time"

	"github.com/google/uuid"
)

// FreezeRequest moves pending -> approved | rejected, both terminal.
type FreezeRequest struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FreezeID string    `gorm:"size:30;not null;unique" json:"freeze_id"`
	Email    string    `gorm:"size:255;not null;index" json:"email"`

	StartDate string `gorm:"size:10;not null" json:"start_date"`
	EndDate   string `gorm:"size:10;not null" json:"end_date"`
	TotalDays int    `gorm:"not null" json:"total_days"`

	Status          string     `gorm:"size:10;not null;default:'pending'" json:"status"`
	RequestedAt     time.Time  `gorm:"not null" json:"requested_at"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ApprovedBy      *string    `gorm:"size:255" json:"approved_by,omitempty"`
	RejectionReason *string    `gorm:"type:text" json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
