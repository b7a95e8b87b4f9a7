package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotListRoundTrip(t *testing.T) {
	slots := SlotList{{Start: "08:00", End: "12:00"}, {Start: "20:00", End: "24:00"}}

	value, err := slots.Value()
	require.NoError(t, err)

	var decoded SlotList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, slots, decoded)
}

func TestSlotListScanNil(t *testing.T) {
	var decoded SlotList
	require.NoError(t, decoded.Scan(nil))
	assert.Empty(t, decoded)
}

func TestSlotListNilValue(t *testing.T) {
	var slots SlotList
	value, err := slots.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}
