package timeslot

import (
	"fmt"
	"time"

	"github.com/malyshevd/PhotoBooker/internal/domain"
)

// Interval is a concrete appointment window on the calendar.
type Interval struct {
	Start time.Time
	End   time.Time
}

// EndLabel renders the end of the interval as a zero-padded 24-hour "HH:MM".
// Note that the label carries only the wall-clock component: an interval
// rolling past midnight reads as an early-morning time. End keeps the real
// instant for callers that need the day.
func (iv Interval) EndLabel() string {
	return iv.End.Format("15:04")
}

// Derive combines a calendar date, a slot label and a service duration into
// the appointment interval. The date's time component is ignored; seconds
// are zeroed. Duration must be non-negative; zero yields Start == End.
func Derive(date time.Time, label string, duration time.Duration) (Interval, error) {
	if duration < 0 {
		return Interval{}, fmt.Errorf("%w: negative duration", domain.ErrInvalidServiceDuration)
	}

	tod, err := ParseLabel(label)
	if err != nil {
		return Interval{}, err
	}

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		tod.Hour, tod.Minute, 0, 0, date.Location(),
	)

	return Interval{Start: start, End: start.Add(duration)}, nil
}
