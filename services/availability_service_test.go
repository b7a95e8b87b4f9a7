package services

import (
	"testing"

	"github.com/deskreserve/deskreserve/models"
	"github.com/stretchr/testify/assert"
)

func activeSub(seat int, start, end string, slots ...models.Slot) models.Subscription {
	return models.Subscription{
		Seat:      seat,
		StartDate: start,
		EndDate:   end,
		Status:    "ACTIVE",
		Slots:     slots,
	}
}

func TestSeatConflictsNoDateOverlap(t *testing.T) {
	subs := []models.Subscription{
		activeSub(5, "2026-01-01", "2026-03-31", models.Slot{Start: "08:00", End: "12:00"}),
	}

	conflict := seatConflicts(subs, "2026-04-01", "2026-06-30",
		[]models.Slot{{Start: "08:00", End: "12:00"}})
	assert.False(t, conflict)
}

func TestSeatConflictsDateAndSlotOverlap(t *testing.T) {
	subs := []models.Subscription{
		activeSub(5, "2026-01-01", "2026-03-31", models.Slot{Start: "08:00", End: "12:00"}),
	}

	conflict := seatConflicts(subs, "2026-03-01", "2026-05-31",
		[]models.Slot{{Start: "10:00", End: "14:00"}})
	assert.True(t, conflict)
}

func TestSeatConflictsDateOverlapDisjointSlots(t *testing.T) {
	subs := []models.Subscription{
		activeSub(5, "2026-01-01", "2026-03-31", models.Slot{Start: "08:00", End: "12:00"}),
	}

	conflict := seatConflicts(subs, "2026-03-01", "2026-05-31",
		[]models.Slot{{Start: "14:00", End: "20:00"}})
	assert.False(t, conflict)
}

func TestSeatConflictsInclusiveRangeBoundary(t *testing.T) {
	subs := []models.Subscription{
		activeSub(5, "2026-01-01", "2026-03-31", models.Slot{Start: "08:00", End: "12:00"}),
	}

	// Query starting on the row's last day overlaps.
	conflict := seatConflicts(subs, "2026-03-31", "2026-06-30",
		[]models.Slot{{Start: "08:00", End: "12:00"}})
	assert.True(t, conflict)
}

func TestSeatConflictsEmptyCandidateSlots(t *testing.T) {
	subs := []models.Subscription{
		activeSub(5, "2026-01-01", "2026-03-31", models.Slot{Start: "08:00", End: "12:00"}),
	}

	// With no candidate slot times to clash, a date overlap alone does
	// not make the seat unavailable.
	conflict := seatConflicts(subs, "2026-03-01", "2026-05-31", nil)
	assert.False(t, conflict)
}

func TestTotalSeatsDefault(t *testing.T) {
	assert.Equal(t, defaultTotalSeats, TotalSeats())
}
