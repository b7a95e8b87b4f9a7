package services

import (
	"testing"

	"github.com/deskreserve/deskreserve/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePriceThreeMonthMorningSlot(t *testing.T) {
	slots := []models.Slot{{Start: "08:00", End: "12:00"}}

	price, err := CalculatePrice(slots, 3)
	require.NoError(t, err)

	// 4 day-rate hours at 58.33/h = 233.32 per day, times 3 months.
	assert.Equal(t, 700, price.BaseAmount)
	assert.Equal(t, 5, price.Discount)
	assert.Equal(t, 35, price.DiscountAmount)
	assert.Equal(t, 665, price.FinalAmount)
}

func TestCalculatePriceNightRate(t *testing.T) {
	slots := []models.Slot{{Start: "00:00", End: "08:00"}}

	price, err := CalculatePrice(slots, 1)
	require.NoError(t, err)

	// 8 night-rate hours at 66.67/h.
	assert.Equal(t, 533, price.BaseAmount)
	assert.Equal(t, 0, price.Discount)
	assert.Equal(t, price.BaseAmount, price.FinalAmount)
}

func TestCalculatePriceInvalidPlan(t *testing.T) {
	slots := []models.Slot{{Start: "08:00", End: "12:00"}}

	for _, months := range []int{0, 2, 4, 5, 7, 24, -1} {
		_, err := CalculatePrice(slots, months)
		assert.ErrorIs(t, err, ErrInvalidPlan, "months=%d", months)
	}
}

func TestCalculatePriceMonotonicInDuration(t *testing.T) {
	slots := []models.Slot{{Start: "09:00", End: "13:00"}}

	var prev int
	for _, months := range []int{1, 3, 6, 12} {
		price, err := CalculatePrice(slots, months)
		require.NoError(t, err)
		assert.Greater(t, price.FinalAmount, prev, "months=%d", months)
		prev = price.FinalAmount
	}
}

func TestCalculatePriceMonotonicInSlotCount(t *testing.T) {
	one, err := CalculatePrice([]models.Slot{{Start: "08:00", End: "10:00"}}, 1)
	require.NoError(t, err)

	two, err := CalculatePrice([]models.Slot{
		{Start: "08:00", End: "10:00"},
		{Start: "14:00", End: "16:00"},
	}, 1)
	require.NoError(t, err)

	assert.Greater(t, two.BaseAmount, one.BaseAmount)
}

func TestDiscountStrictlyReducesFinalAmount(t *testing.T) {
	slots := []models.Slot{{Start: "08:00", End: "20:00"}}

	for _, months := range []int{3, 6, 12} {
		price, err := CalculatePrice(slots, months)
		require.NoError(t, err)
		assert.Less(t, price.FinalAmount, price.BaseAmount, "months=%d", months)
	}

	price, err := CalculatePrice(slots, 1)
	require.NoError(t, err)
	assert.Equal(t, price.BaseAmount, price.FinalAmount)
}

func TestDiscountForMonths(t *testing.T) {
	assert.Equal(t, 0, DiscountForMonths(1))
	assert.Equal(t, 5, DiscountForMonths(3))
	assert.Equal(t, 8, DiscountForMonths(6))
	assert.Equal(t, 15, DiscountForMonths(12))
	assert.Equal(t, 0, DiscountForMonths(9))
}

func TestPlanAllowances(t *testing.T) {
	cases := []struct {
		months      int
		freezeDays  int
		seatChanges int
	}{
		{1, 7, 0},
		{3, 7, 3},
		{6, 20, 8},
		{12, 50, 8},
		{5, 0, 0},
	}

	for _, tc := range cases {
		freeze, seat := PlanAllowances(tc.months)
		assert.Equal(t, tc.freezeDays, freeze, "months=%d", tc.months)
		assert.Equal(t, tc.seatChanges, seat, "months=%d", tc.months)
	}
}
