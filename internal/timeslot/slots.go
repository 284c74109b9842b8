// Package timeslot owns the time arithmetic of the intake flow: the fixed
// slot grid offered for a day, parsing of slot labels, and derivation of the
// concrete appointment interval from a slot and a service duration.
package timeslot

import "fmt"

// Business hours: slots are offered on the hour from opening to closing,
// both inclusive.
const (
	OpeningHour = 9
	ClosingHour = 17
)

// Generate returns the ordered slot labels for one business day, rendered on
// a 12-hour clock with a zero-padded hour: "09:00 AM" ... "05:00 PM". The
// result is the same on every call.
func Generate() []string {
	slots := make([]string, 0, ClosingHour-OpeningHour+1)
	for h := OpeningHour; h <= ClosingHour; h++ {
		hour12 := h % 12
		if hour12 == 0 {
			hour12 = 12
		}
		meridiem := "AM"
		if h >= 12 {
			meridiem = "PM"
		}
		slots = append(slots, fmt.Sprintf("%02d:00 %s", hour12, meridiem))
	}
	return slots
}
