package timeslot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/malyshevd/PhotoBooker/internal/domain"
)

// TimeOfDay is a wall-clock time in 24-hour form.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseLabel parses a slot label of the form "HH:MM" or "HH:MM AM|PM"
// (meridiem case-insensitive) into a 24-hour TimeOfDay. Without a meridiem
// the hour is taken as already 24-hour. Malformed input is rejected with
// domain.ErrMalformedSlot rather than defaulted.
func ParseLabel(label string) (TimeOfDay, error) {
	parts := strings.Fields(label)
	if len(parts) == 0 || len(parts) > 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", domain.ErrMalformedSlot, label)
	}

	hh, mm, ok := strings.Cut(parts[0], ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("%w: %q", domain.ErrMalformedSlot, label)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", domain.ErrMalformedSlot, label)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", domain.ErrMalformedSlot, label)
	}

	if len(parts) == 2 {
		if hour < 1 || hour > 12 {
			return TimeOfDay{}, fmt.Errorf("%w: %q", domain.ErrMalformedSlot, label)
		}
		switch strings.ToUpper(parts[1]) {
		case "PM":
			if hour < 12 {
				hour += 12
			}
		case "AM":
			if hour == 12 {
				hour = 0
			}
		default:
			return TimeOfDay{}, fmt.Errorf("%w: %q", domain.ErrMalformedSlot, label)
		}
		return TimeOfDay{Hour: hour, Minute: minute}, nil
	}

	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", domain.ErrMalformedSlot, label)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}
