package services

import (
	"strconv"

	config "github.com/deskreserve/deskreserve/configs"
	"github.com/deskreserve/deskreserve/models"
	"github.com/deskreserve/deskreserve/utils"
	"gorm.io/gorm"
)

const defaultTotalSeats = 75

// TotalSeats reads the seat pool size from TOTAL_SEATS, falling back to the
// default pool.
func TotalSeats() int {
	if v := config.Config("TOTAL_SEATS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultTotalSeats
}

// The three preset windows shown on the live seat map.
var presetWindows = []models.Slot{
	{Start: "08:00", End: "14:00"},
	{Start: "14:00", End: "20:00"},
	{Start: "20:00", End: "24:00"},
}

type SeatStatus struct {
	Seat        int               `json:"seat"`
	IsAvailable bool              `json:"isAvailable"`
	SeatStatus  string            `json:"seatStatus"`
	Slots       map[string]string `json:"slots"`
}

// seatConflicts is the pure core of IsSeatAvailable: does any ACTIVE
// subscription in subs clash with the candidate date range and slots?
// Rows with no date overlap never conflict; with a date overlap, only a
// slot-time overlap makes the seat unavailable.
func seatConflicts(subs []models.Subscription, startDate, endDate string, candidate []models.Slot) bool {
	for _, sub := range subs {
		if !utils.DateRangesOverlap(startDate, endDate, sub.StartDate, sub.EndDate) {
			continue
		}
		if SlotsOverlap(candidate, sub.Slots) {
			return true
		}
	}
	return false
}

// IsSeatAvailable checks one seat against every ACTIVE subscription for
// date-range plus slot-time overlap. An empty candidate slot set never
// conflicts; callers that want slot clashes detected must pass the slots
// they intend to occupy, as subscription create and seat change do.
func IsSeatAvailable(db *gorm.DB, seat int, startDate, endDate string, candidate []models.Slot) (bool, error) {
	var subs []models.Subscription
	if err := db.Where("seat = ? AND status = ?", seat, "ACTIVE").Find(&subs).Error; err != nil {
		return false, err
	}
	return !seatConflicts(subs, startDate, endDate, candidate), nil
}

// GetAvailableSeats returns seats with no date-overlapping ACTIVE
// subscription at all. Unlike the per-seat check this is day-granular:
// any date overlap excludes the seat regardless of slot times.
func GetAvailableSeats(db *gorm.DB, startDate, endDate string) ([]int, error) {
	var subs []models.Subscription
	if err := db.Where("status = ?", "ACTIVE").Find(&subs).Error; err != nil {
		return nil, err
	}

	occupied := make(map[int]bool)
	for _, sub := range subs {
		if utils.DateRangesOverlap(startDate, endDate, sub.StartDate, sub.EndDate) {
			occupied[sub.Seat] = true
		}
	}

	free := []int{}
	for seat := 1; seat <= TotalSeats(); seat++ {
		if !occupied[seat] {
			free = append(free, seat)
		}
	}
	return free, nil
}

// SeatStatusByDate reports, for every seat, which of the three preset
// windows is booked on the given date.
func SeatStatusByDate(db *gorm.DB, date string) ([]SeatStatus, error) {
	var subs []models.Subscription
	if err := db.Where("status = ? AND start_date <= ? AND end_date >= ?", "ACTIVE", date, date).
		Find(&subs).Error; err != nil {
		return nil, err
	}

	bySeat := make(map[int][]models.Subscription)
	for _, sub := range subs {
		bySeat[sub.Seat] = append(bySeat[sub.Seat], sub)
	}

	result := make([]SeatStatus, 0, TotalSeats())
	for seat := 1; seat <= TotalSeats(); seat++ {
		windows := make(map[string]string, len(presetWindows))
		booked := 0
		for _, w := range presetWindows {
			status := "FREE"
			for _, sub := range bySeat[seat] {
				if SlotsOverlap([]models.Slot{w}, sub.Slots) {
					status = "BOOKED"
					break
				}
			}
			if status == "BOOKED" {
				booked++
			}
			windows[w.Start+"-"+w.End] = status
		}

		seatStatus := "AVAILABLE"
		if booked == len(presetWindows) {
			seatStatus = "FULL"
		} else if booked > 0 {
			seatStatus = "PARTIAL"
		}

		result = append(result, SeatStatus{
			Seat:        seat,
			IsAvailable: seatStatus != "FULL",
			SeatStatus:  seatStatus,
			Slots:       windows,
		})
	}
	return result, nil
}
