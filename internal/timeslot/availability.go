package timeslot

import "time"

// Availability decides whether a calendar date may be booked: it must not be
// in the exclusion set and must not lie before today. Only the year, month
// and day of a date matter; time-of-day is ignored.
type Availability struct {
	excluded map[string]struct{}
	now      func() time.Time
}

// NewAvailability builds the predicate from the blackout dates. The now
// function may be nil, in which case time.Now is used.
func NewAvailability(blackouts []time.Time, now func() time.Time) *Availability {
	if now == nil {
		now = time.Now
	}
	excluded := make(map[string]struct{}, len(blackouts))
	for _, d := range blackouts {
		excluded[dayKey(d)] = struct{}{}
	}
	return &Availability{excluded: excluded, now: now}
}

// IsExcluded reports whether the date matches a blackout entry.
func (a *Availability) IsExcluded(date time.Time) bool {
	_, ok := a.excluded[dayKey(date)]
	return ok
}

// MinSelectable is the earliest selectable date: today, at midnight local time.
func (a *Availability) MinSelectable() time.Time {
	n := a.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())
}

// Bookable reports whether the date may be selected at all: not excluded and
// not in the past (today is bookable).
func (a *Availability) Bookable(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	if day.Before(a.MinSelectable()) {
		return false
	}
	return !a.IsExcluded(date)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
