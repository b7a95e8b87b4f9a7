package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is append-only; nothing reads it back except operators.
type AuditLog struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Admin   string    `gorm:"size:255;not null" json:"admin"`
	Action  string    `gorm:"size:50;not null" json:"action"`
	Details string    `gorm:"type:text" json:"details"`

	CreatedAt time.Time `json:"created_at"`
}
