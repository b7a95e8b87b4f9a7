package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/deskreserve/deskreserve/models"
)

const minutesPerDay = 24 * 60

var ErrInvalidSlot = errors.New("invalid slot")

// ToMinutes parses "HH:MM" into minutes since midnight.
func ToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: bad time %q", ErrInvalidSlot, t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: bad time %q", ErrInvalidSlot, t)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || h < 0 {
		return 0, fmt.Errorf("%w: bad time %q", ErrInvalidSlot, t)
	}
	return h*60 + m, nil
}

// ValidateSlots rejects empty sets, malformed times, zero-length or
// midnight-crossing slots, and pairwise overlaps. It must run before
// pricing and before persistence.
func ValidateSlots(slots []models.Slot) error {
	if len(slots) == 0 {
		return fmt.Errorf("%w: at least one slot required", ErrInvalidSlot)
	}

	type span struct{ start, end int }
	spans := make([]span, 0, len(slots))

	for _, s := range slots {
		start, err := ToMinutes(s.Start)
		if err != nil {
			return err
		}
		end, err := ToMinutes(s.End)
		if err != nil {
			return err
		}
		if end <= start {
			return fmt.Errorf("%w: invalid slot range %s-%s", ErrInvalidSlot, s.Start, s.End)
		}
		if end > minutesPerDay {
			return fmt.Errorf("%w: slot cannot exceed 24 hours", ErrInvalidSlot)
		}
		spans = append(spans, span{start, end})
	}

	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if spans[i].start < spans[j].end && spans[i].end > spans[j].start {
				return fmt.Errorf("%w: overlapping slots not allowed", ErrInvalidSlot)
			}
		}
	}
	return nil
}

// SlotsOverlap reports whether any candidate slot intersects any existing
// slot, half-open on both sides.
func SlotsOverlap(candidate, existing []models.Slot) bool {
	for _, a := range candidate {
		aStart, err := ToMinutes(a.Start)
		if err != nil {
			continue
		}
		aEnd, err := ToMinutes(a.End)
		if err != nil {
			continue
		}
		for _, b := range existing {
			bStart, err := ToMinutes(b.Start)
			if err != nil {
				continue
			}
			bEnd, err := ToMinutes(b.End)
			if err != nil {
				continue
			}
			if aStart < bEnd && aEnd > bStart {
				return true
			}
		}
	}
	return false
}
