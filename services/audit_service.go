package services

import (
	"log"

	"github.com/deskreserve/deskreserve/database"
	"github.com/deskreserve/deskreserve/models"
)

// LogAction appends an audit row. Audit failures are logged and swallowed;
// they never fail the request that triggered them.
func LogAction(admin, action, details string) {
	entry := models.AuditLog{Admin: admin, Action: action, Details: details}
	if err := database.DB.Create(&entry).Error; err != nil {
		log.Printf("Failed to write audit log (%s): %v", action, err)
	}
}
