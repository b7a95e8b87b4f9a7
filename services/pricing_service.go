package services

import (
	"errors"
	"math"

	"github.com/deskreserve/deskreserve/models"
)

// Hourly rates. Minutes in [08:00, 24:00) bill at the day rate, the rest at
// the night rate. A slot's price is its daily cost scaled by the plan's
// month count: the subscriber occupies the slot every day of the plan.
const (
	dayRate   = 58.33
	nightRate = 66.67

	dayStartMinute = 8 * 60
	dayEndMinute   = 24 * 60
)

var ErrInvalidPlan = errors.New("invalid plan")

var planMonths = map[int]bool{1: true, 3: true, 6: true, 12: true}

type PriceBreakdown struct {
	BaseAmount     int `json:"baseAmount"`
	Discount       int `json:"discount"`
	DiscountAmount int `json:"discountAmount"`
	FinalAmount    int `json:"finalAmount"`
}

// DiscountForMonths is a step function of plan length, in percent.
func DiscountForMonths(months int) int {
	switch months {
	case 3:
		return 5
	case 6:
		return 8
	case 12:
		return 15
	default:
		return 0
	}
}

// PlanAllowances returns the freeze-day and seat-change quotas granted by a
// plan: {1mo: 7/0, 3mo: 7/3, 6mo: 20/8, 12mo: 50/8}.
func PlanAllowances(months int) (freezeDays, seatChanges int) {
	switch months {
	case 1:
		return 7, 0
	case 3:
		return 7, 3
	case 6:
		return 20, 8
	case 12:
		return 50, 8
	default:
		return 0, 0
	}
}

// CalculatePrice prices a slot set for a plan. Amounts are rounded to the
// nearest whole currency unit. Slots must already be validated.
func CalculatePrice(slots []models.Slot, months int) (PriceBreakdown, error) {
	if !planMonths[months] {
		return PriceBreakdown{}, ErrInvalidPlan
	}

	var base float64
	for _, s := range slots {
		start, err := ToMinutes(s.Start)
		if err != nil {
			return PriceBreakdown{}, err
		}
		end, err := ToMinutes(s.End)
		if err != nil {
			return PriceBreakdown{}, err
		}
		for m := start; m < end; m++ {
			if m >= dayStartMinute && m < dayEndMinute {
				base += dayRate / 60
			} else {
				base += nightRate / 60
			}
		}
	}

	base *= float64(months)

	discount := DiscountForMonths(months)
	discountAmount := base * float64(discount) / 100

	return PriceBreakdown{
		BaseAmount:     int(math.Round(base)),
		Discount:       discount,
		DiscountAmount: int(math.Round(discountAmount)),
		FinalAmount:    int(math.Round(base - discountAmount)),
	}, nil
}
