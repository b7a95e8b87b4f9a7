package services

import (
	"testing"

	"github.com/deskreserve/deskreserve/models"
	"github.com/stretchr/testify/assert"
)

func freeze(status, start, end string) models.FreezeRequest {
	return models.FreezeRequest{Status: status, StartDate: start, EndDate: end}
}

func TestFreezeRangeOverlapsPending(t *testing.T) {
	existing := []models.FreezeRequest{freeze("pending", "2026-09-10", "2026-09-15")}

	assert.True(t, freezeRangeOverlaps(existing, "2026-09-14", "2026-09-20"))
	assert.True(t, freezeRangeOverlaps(existing, "2026-09-01", "2026-09-10"))
	assert.False(t, freezeRangeOverlaps(existing, "2026-09-16", "2026-09-20"))
}

func TestFreezeRangeOverlapsApproved(t *testing.T) {
	existing := []models.FreezeRequest{freeze("approved", "2026-09-10", "2026-09-15")}

	assert.True(t, freezeRangeOverlaps(existing, "2026-09-12", "2026-09-13"))
}

func TestFreezeRangeIgnoresRejected(t *testing.T) {
	existing := []models.FreezeRequest{freeze("rejected", "2026-09-10", "2026-09-15")}

	assert.False(t, freezeRangeOverlaps(existing, "2026-09-12", "2026-09-13"))
}

func TestFreezeRangeOverlapsEmptyHistory(t *testing.T) {
	assert.False(t, freezeRangeOverlaps(nil, "2026-09-12", "2026-09-13"))
}

func TestApplyFreezeExtendsEndDateByTotalDays(t *testing.T) {
	sub := models.Subscription{EndDate: "2026-09-30", FreezeDaysAllowed: 20, FreezeDaysUsed: 3}

	err := ApplyFreeze(&sub, 5)
	assert.NoError(t, err)
	assert.Equal(t, "2026-10-05", sub.EndDate)
	assert.Equal(t, 8, sub.FreezeDaysUsed)
}

func TestApplyFreezeSpendsFullAllowance(t *testing.T) {
	sub := models.Subscription{EndDate: "2026-09-30", FreezeDaysAllowed: 7}

	assert.NoError(t, ApplyFreeze(&sub, 7))
	assert.Equal(t, "2026-10-07", sub.EndDate)
	assert.Equal(t, 7, sub.FreezeDaysUsed)
}

func TestApplyFreezeRejectsOverdraft(t *testing.T) {
	sub := models.Subscription{EndDate: "2026-09-30", FreezeDaysAllowed: 7, FreezeDaysUsed: 3}

	err := ApplyFreeze(&sub, 5)
	assert.ErrorIs(t, err, ErrInsufficientFreezeBalance)
	assert.Equal(t, "2026-09-30", sub.EndDate)
	assert.Equal(t, 3, sub.FreezeDaysUsed)
}
