package services

import (
	"errors"
	"fmt"

	"github.com/deskreserve/deskreserve/models"
	"github.com/deskreserve/deskreserve/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSubscriptionNotFound        = errors.New("active subscription not found")
	ErrSubscriptionNotActive       = errors.New("subscription is not active")
	ErrSubscriptionExpired         = errors.New("subscription period expired")
	ErrSeatChangeNotAllowedForPlan = errors.New("seat change not allowed for 1 month plan")
	ErrSeatChangeLimitExceeded     = errors.New("seat change limit exceeded")
	ErrFrozenSeatChangeDenied      = errors.New("cannot change seat during active freeze")
	ErrSameSeat                    = errors.New("new seat cannot be same as old seat")
	ErrSeatUnavailable             = errors.New("new seat not available")
)

type SeatChangeResult struct {
	SeatChangeUsed      int `json:"seat_change_used"`
	SeatChangeRemaining int `json:"seat_change_remaining"`
}

// checkSeatChange runs the precondition chain shared by every seat change,
// in the order failures are reported. Seat availability is checked
// separately because it needs the store.
func checkSeatChange(sub models.Subscription, today string, oldSeat, newSeat int, frozen bool) error {
	if sub.Status != "ACTIVE" {
		return ErrSubscriptionNotActive
	}
	if today < sub.StartDate || today > sub.EndDate {
		return ErrSubscriptionExpired
	}
	if sub.Months == 1 {
		return ErrSeatChangeNotAllowedForPlan
	}
	if sub.SeatChangeUsed >= sub.SeatChangeAllowed {
		return ErrSeatChangeLimitExceeded
	}
	if frozen {
		return ErrFrozenSeatChangeDenied
	}
	if oldSeat == newSeat {
		return ErrSameSeat
	}
	return nil
}

// ChangeSeat relocates an active subscription to a new seat, enforcing the
// plan quota and freeze exclusivity. The seat update, counter increment and
// audit entry commit in one transaction.
func ChangeSeat(db *gorm.DB, email string, oldSeat, newSeat int, admin string) (*SeatChangeResult, error) {
	var result SeatChangeResult

	err := db.Transaction(func(tx *gorm.DB) error {
		var sub models.Subscription
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("email = ? AND seat = ?", email, oldSeat).
			First(&sub).Error
		if err == gorm.ErrRecordNotFound {
			return ErrSubscriptionNotFound
		}
		if err != nil {
			return err
		}

		frozen, err := IsUserFrozen(tx, email)
		if err != nil {
			return err
		}
		if err := checkSeatChange(sub, utils.Today(), oldSeat, newSeat, frozen); err != nil {
			return err
		}

		available, err := IsSeatAvailable(tx, newSeat, sub.StartDate, sub.EndDate, sub.Slots)
		if err != nil {
			return err
		}
		if !available {
			return ErrSeatUnavailable
		}

		sub.Seat = newSeat
		sub.SeatChangeUsed++
		if err := tx.Save(&sub).Error; err != nil {
			return err
		}

		audit := models.AuditLog{
			Admin:   admin,
			Action:  "CHANGE_SEAT",
			Details: fmt.Sprintf("%s changed seat %d -> %d", email, oldSeat, newSeat),
		}
		if err := tx.Create(&audit).Error; err != nil {
			return err
		}

		result = SeatChangeResult{
			SeatChangeUsed:      sub.SeatChangeUsed,
			SeatChangeRemaining: sub.SeatChangeAllowed - sub.SeatChangeUsed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
