package domain

import "time"

// Field keys used in validation error maps and in the wire DTOs. They match
// the form field names of the web client.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldService  = "selectedService"
	FieldDate     = "selectedDate"
	FieldTimeSlot = "selectedTime"
	FieldOccasion = "occasion"
)

// Occasions is the fixed set of occasion categories offered by the form.
var Occasions = []string{
	"Birthday",
	"Anniversary",
	"Engagement",
	"Family Gathering",
	"Corporate",
	"Other",
}

// ValidOccasion reports whether s is a member of Occasions.
func ValidOccasion(s string) bool {
	for _, o := range Occasions {
		if o == s {
			return true
		}
	}
	return false
}

// BookingDraft is the mutable state of one form session. Date is nil until
// the user picks a day; all other fields are free text or identifiers.
type BookingDraft struct {
	Name      string
	Email     string
	Phone     string
	ServiceID string
	Date      *time.Time
	TimeSlot  string
	Occasion  string
	Notes     string
}

// Clear resets the draft to its initial empty state.
func (d *BookingDraft) Clear() {
	*d = BookingDraft{}
}

// ValidationErrors maps a form field key to a human-readable message.
// An empty map means the draft is valid.
type ValidationErrors map[string]string

func (e ValidationErrors) Valid() bool {
	return len(e) == 0
}
