package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMonths(t *testing.T) {
	got, err := AddMonths("2026-01-15", 3)
	require.NoError(t, err)
	assert.Equal(t, "2026-04-15", got)

	got, err = AddMonths("2026-06-30", 12)
	require.NoError(t, err)
	assert.Equal(t, "2027-06-30", got)

	_, err = AddMonths("not-a-date", 1)
	assert.Error(t, err)
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2026-02-26", 5)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-03", got)
}

func TestInclusiveDays(t *testing.T) {
	days, err := InclusiveDays("2026-09-10", "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, 1, days)

	days, err = InclusiveDays("2026-09-10", "2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, 6, days)

	_, err = InclusiveDays("2026-09-10", "bad")
	assert.Error(t, err)
}

func TestDateRangesOverlap(t *testing.T) {
	assert.True(t, DateRangesOverlap("2026-01-01", "2026-03-31", "2026-03-31", "2026-06-30"))
	assert.True(t, DateRangesOverlap("2026-02-01", "2026-02-28", "2026-01-01", "2026-12-31"))
	assert.False(t, DateRangesOverlap("2026-01-01", "2026-03-31", "2026-04-01", "2026-06-30"))
}
