package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Slot is a daily recurring time-of-day interval, "HH:MM" inclusive start,
// exclusive end.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SlotList is stored as a single JSONB column.
type SlotList []Slot

func (s SlotList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *SlotList) Scan(value interface{}) error {
	if value == nil {
		*s = SlotList{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for SlotList")
	}
	return json.Unmarshal(b, s)
}
