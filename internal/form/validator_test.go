package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malyshevd/PhotoBooker/internal/domain"
)

func validDraft() *domain.BookingDraft {
	date := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	return &domain.BookingDraft{
		Name:      "Asha Verma",
		Email:     "asha@example.com",
		Phone:     "+91 12345 67890",
		ServiceID: "6886297912080466b8ca9b67",
		Date:      &date,
		TimeSlot:  "10:00 AM",
		Occasion:  "Birthday",
	}
}

func TestValidate_EmptyDraft(t *testing.T) {
	errs := Validate(&domain.BookingDraft{})

	require.Len(t, errs, 7)
	assert.Equal(t, "Name is required", errs[domain.FieldName])
	assert.Equal(t, "Email is required", errs[domain.FieldEmail])
	assert.Equal(t, "Phone number is required", errs[domain.FieldPhone])
	assert.Equal(t, "Please select a service", errs[domain.FieldService])
	assert.Equal(t, "Please select a date", errs[domain.FieldDate])
	assert.Equal(t, "Please select a time slot", errs[domain.FieldTimeSlot])
	assert.Equal(t, "Please select an occasion type", errs[domain.FieldOccasion])
}

func TestValidate_ValidDraft(t *testing.T) {
	errs := Validate(validDraft())

	assert.True(t, errs.Valid())
	assert.Empty(t, errs)
}

func TestValidate_BadEmailFormat(t *testing.T) {
	d := validDraft()
	d.Email = "not-an-email"

	errs := Validate(d)

	require.Len(t, errs, 1)
	assert.Equal(t, "Email is invalid", errs[domain.FieldEmail])
}

func TestValidate_WhitespaceNameRejected(t *testing.T) {
	d := validDraft()
	d.Name = "   "

	errs := Validate(d)

	assert.Equal(t, "Name is required", errs[domain.FieldName])
}

func TestValidate_UnknownOccasionRejected(t *testing.T) {
	d := validDraft()
	d.Occasion = "Housewarming"

	errs := Validate(d)

	require.Len(t, errs, 1)
	assert.Equal(t, "Please select an occasion type", errs[domain.FieldOccasion])
}

func TestValidate_RulesAreIndependent(t *testing.T) {
	d := validDraft()
	d.Email = "broken"
	d.Phone = ""
	d.TimeSlot = ""

	errs := Validate(d)

	require.Len(t, errs, 3)
	assert.Contains(t, errs, domain.FieldEmail)
	assert.Contains(t, errs, domain.FieldPhone)
	assert.Contains(t, errs, domain.FieldTimeSlot)
}
