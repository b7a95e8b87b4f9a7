package services

import (
	"errors"

	"github.com/deskreserve/deskreserve/models"
	"github.com/deskreserve/deskreserve/utils"
	"gorm.io/gorm"
)

var ErrInsufficientFreezeBalance = errors.New("Insufficient freeze balance")

// ApplyFreeze burns totalDays of freeze allowance and pushes the
// subscription end date out by the same count. The subscription is left
// untouched when the balance is short.
func ApplyFreeze(sub *models.Subscription, totalDays int) error {
	remaining := sub.FreezeDaysAllowed - sub.FreezeDaysUsed
	if totalDays > remaining {
		return ErrInsufficientFreezeBalance
	}
	extended, err := utils.AddDays(sub.EndDate, totalDays)
	if err != nil {
		return err
	}
	sub.EndDate = extended
	sub.FreezeDaysUsed += totalDays
	return nil
}

// GetActiveSubscription finds an ACTIVE subscription for the email whose
// period contains today. Nil without error when none matches.
func GetActiveSubscription(db *gorm.DB, email string) (*models.Subscription, error) {
	today := utils.Today()
	var sub models.Subscription
	err := db.Where("email = ? AND status = ? AND start_date <= ? AND end_date >= ?",
		email, "ACTIVE", today, today).First(&sub).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// IsUserFrozen reports whether an approved freeze window contains today.
// Seat changes and seat edits are gated on this.
func IsUserFrozen(db *gorm.DB, email string) (bool, error) {
	today := utils.Today()
	var count int64
	err := db.Model(&models.FreezeRequest{}).
		Where("email = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			email, "approved", today, today).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// freezeRangeOverlaps is the pure overlap check: rejected requests never
// block a new one, anything pending or approved does.
func freezeRangeOverlaps(existing []models.FreezeRequest, startDate, endDate string) bool {
	for _, fr := range existing {
		if fr.Status == "rejected" {
			continue
		}
		if utils.DateRangesOverlap(startDate, endDate, fr.StartDate, fr.EndDate) {
			return true
		}
	}
	return false
}

// HasOverlappingFreeze checks the new range against every non-rejected
// freeze already filed for the email.
func HasOverlappingFreeze(db *gorm.DB, email, startDate, endDate string) (bool, error) {
	var existing []models.FreezeRequest
	if err := db.Where("email = ?", email).Find(&existing).Error; err != nil {
		return false, err
	}
	return freezeRangeOverlaps(existing, startDate, endDate), nil
}

// ActiveFreeze returns the approved freeze containing today, if any.
func ActiveFreeze(db *gorm.DB, email string) (*models.FreezeRequest, error) {
	today := utils.Today()
	var fr models.FreezeRequest
	err := db.Where("email = ? AND status = ? AND start_date <= ? AND end_date >= ?",
		email, "approved", today, today).First(&fr).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fr, nil
}
