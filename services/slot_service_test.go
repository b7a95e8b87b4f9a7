package services

import (
	"testing"

	"github.com/deskreserve/deskreserve/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	m, err := ToMinutes("08:30")
	require.NoError(t, err)
	assert.Equal(t, 510, m)

	m, err = ToMinutes("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = ToMinutes("24:00")
	require.NoError(t, err)
	assert.Equal(t, 1440, m)

	for _, bad := range []string{"", "8", "8:3:0", "ab:cd", "10:70", "-1:00"} {
		_, err := ToMinutes(bad)
		assert.ErrorIs(t, err, ErrInvalidSlot, "input=%q", bad)
	}
}

func TestValidateSlotsRejectsEmptySet(t *testing.T) {
	err := ValidateSlots(nil)
	assert.ErrorIs(t, err, ErrInvalidSlot)
	assert.Contains(t, err.Error(), "at least one slot required")
}

func TestValidateSlotsRejectsZeroOrNegativeLength(t *testing.T) {
	err := ValidateSlots([]models.Slot{{Start: "10:00", End: "10:00"}})
	assert.ErrorIs(t, err, ErrInvalidSlot)

	// A midnight wraparound reads as end before start.
	err = ValidateSlots([]models.Slot{{Start: "22:00", End: "02:00"}})
	assert.ErrorIs(t, err, ErrInvalidSlot)
	assert.Contains(t, err.Error(), "invalid slot range")
}

func TestValidateSlotsRejectsPastMidnight(t *testing.T) {
	err := ValidateSlots([]models.Slot{{Start: "22:00", End: "26:00"}})
	assert.ErrorIs(t, err, ErrInvalidSlot)
	assert.Contains(t, err.Error(), "exceed 24 hours")
}

func TestValidateSlotsRejectsOverlap(t *testing.T) {
	err := ValidateSlots([]models.Slot{
		{Start: "08:00", End: "12:00"},
		{Start: "11:00", End: "14:00"},
	})
	assert.ErrorIs(t, err, ErrInvalidSlot)
	assert.Contains(t, err.Error(), "overlapping")
}

func TestValidateSlotsAcceptsDisjointSet(t *testing.T) {
	err := ValidateSlots([]models.Slot{
		{Start: "00:00", End: "06:00"},
		{Start: "08:00", End: "12:00"},
		{Start: "12:00", End: "16:00"},
	})
	assert.NoError(t, err)
}

func TestSlotsOverlap(t *testing.T) {
	existing := []models.Slot{{Start: "08:00", End: "12:00"}}

	assert.True(t, SlotsOverlap([]models.Slot{{Start: "11:00", End: "13:00"}}, existing))
	assert.True(t, SlotsOverlap([]models.Slot{{Start: "07:00", End: "09:00"}}, existing))
	assert.True(t, SlotsOverlap([]models.Slot{{Start: "09:00", End: "10:00"}}, existing))

	// Back to back is not an overlap.
	assert.False(t, SlotsOverlap([]models.Slot{{Start: "12:00", End: "16:00"}}, existing))
	assert.False(t, SlotsOverlap([]models.Slot{{Start: "06:00", End: "08:00"}}, existing))

	assert.False(t, SlotsOverlap(nil, existing))
	assert.False(t, SlotsOverlap([]models.Slot{{Start: "11:00", End: "13:00"}}, nil))
}
