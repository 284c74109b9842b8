// Package form validates a booking draft before submission.
package form

import (
	"regexp"
	"strings"

	"github.com/malyshevd/PhotoBooker/internal/domain"
)

// One @ with non-whitespace on both sides and a dot in the domain part.
// Deliberately loose; the remote service does its own verification.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.\S+$`)

// Validate runs every rule against the draft and returns the field-keyed
// error set. Rules are independent and all evaluated on each pass; an empty
// result means the draft may be submitted.
func Validate(d *domain.BookingDraft) domain.ValidationErrors {
	errs := domain.ValidationErrors{}

	if strings.TrimSpace(d.Name) == "" {
		errs[domain.FieldName] = "Name is required"
	}

	if d.Email == "" {
		errs[domain.FieldEmail] = "Email is required"
	} else if !emailPattern.MatchString(d.Email) {
		errs[domain.FieldEmail] = "Email is invalid"
	}

	if d.Phone == "" {
		errs[domain.FieldPhone] = "Phone number is required"
	}

	if d.ServiceID == "" {
		errs[domain.FieldService] = "Please select a service"
	}

	if d.Date == nil {
		errs[domain.FieldDate] = "Please select a date"
	}

	if d.TimeSlot == "" {
		errs[domain.FieldTimeSlot] = "Please select a time slot"
	}

	if !domain.ValidOccasion(d.Occasion) {
		errs[domain.FieldOccasion] = "Please select an occasion type"
	}

	return errs
}
