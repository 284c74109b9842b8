package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/malyshevd/PhotoBooker/internal/domain"
	"github.com/malyshevd/PhotoBooker/internal/form"
)

const (
	fallbackSuccessMessage = "Booking request sent successfully!"
	fallbackFailureMessage = "Something went wrong."
)

// IntakeSvc is what a form session needs from the intake pipeline.
type IntakeSvc interface {
	Prepare(ctx context.Context, draft *domain.BookingDraft) (*domain.BookingRequest, *domain.Service, error)
	Forward(ctx context.Context, req *domain.BookingRequest, svc *domain.Service) (*domain.SubmissionReceipt, error)
}

// FormSession owns the state of one booking form: the draft being edited,
// the field errors of the last validation pass, the status banner and the
// submission state machine. A session serves a single user interaction
// context; field edits are not guarded, only the re-entrant submit is.
type FormSession struct {
	intake IntakeSvc

	draft    domain.BookingDraft
	errors   domain.ValidationErrors
	status   domain.SubmissionStatus
	state    domain.SubmissionState
	inFlight atomic.Bool
}

func NewFormSession(intake IntakeSvc) *FormSession {
	return &FormSession{
		intake: intake,
		errors: domain.ValidationErrors{},
		state:  domain.StateIdle,
	}
}

func (f *FormSession) SetName(v string)        { f.draft.Name = v }
func (f *FormSession) SetEmail(v string)       { f.draft.Email = v }
func (f *FormSession) SetPhone(v string)       { f.draft.Phone = v }
func (f *FormSession) SelectService(id string) { f.draft.ServiceID = id }
func (f *FormSession) SelectTime(label string) { f.draft.TimeSlot = label }
func (f *FormSession) SetOccasion(v string)    { f.draft.Occasion = v }
func (f *FormSession) SetNotes(v string)       { f.draft.Notes = v }

// SelectDate records the picked date and clears the date-field error only;
// other field errors stay until the next validation pass.
func (f *FormSession) SelectDate(date time.Time) {
	f.draft.Date = &date
	delete(f.errors, domain.FieldDate)
}

func (f *FormSession) Draft() domain.BookingDraft      { return f.draft }
func (f *FormSession) Errors() domain.ValidationErrors { return f.errors }
func (f *FormSession) Status() domain.SubmissionStatus { return f.status }
func (f *FormSession) State() domain.SubmissionState   { return f.state }

// Submit runs one submission attempt. On success the draft and error set are
// cleared and the banner carries the confirmation; on any failure the draft
// is preserved for correction and the session returns to Idle. A second
// Submit while one is in flight is rejected with domain.ErrSubmitInFlight.
// The returned error is the classified failure, nil on success.
func (f *FormSession) Submit(ctx context.Context) error {
	if !f.inFlight.CompareAndSwap(false, true) {
		return domain.ErrSubmitInFlight
	}
	defer f.inFlight.Store(false)

	f.status = domain.SubmissionStatus{}

	f.state = domain.StateValidating
	if errs := form.Validate(&f.draft); !errs.Valid() {
		f.state = domain.StateInvalid
		f.errors = errs
		f.state = domain.StateIdle
		return &domain.InvalidDraftError{Fields: errs}
	}
	f.errors = domain.ValidationErrors{}

	f.state = domain.StateDeriving
	req, svc, err := f.intake.Prepare(ctx, &f.draft)
	if err != nil {
		f.fail(err)
		return err
	}

	f.state = domain.StateSubmitting
	receipt, err := f.intake.Forward(ctx, req, svc)
	if err != nil {
		f.fail(err)
		return err
	}

	f.state = domain.StateSucceeded
	message := fallbackSuccessMessage
	if receipt != nil && receipt.Message != "" {
		message = receipt.Message
	}
	f.status = domain.SubmissionStatus{Kind: domain.BannerSuccess, Message: message}

	f.draft.Clear()
	f.errors = domain.ValidationErrors{}
	f.state = domain.StateIdle

	return nil
}

func (f *FormSession) fail(err error) {
	var invalid *domain.InvalidDraftError
	if errors.As(err, &invalid) {
		f.state = domain.StateInvalid
		f.errors = invalid.Fields
		f.state = domain.StateIdle
		return
	}

	f.state = domain.StateFailed
	f.status = domain.SubmissionStatus{
		Kind:    domain.BannerError,
		Message: "Booking failed: " + failureMessage(err),
	}
	f.state = domain.StateIdle
}

// failureMessage picks the most specific text available: the server-provided
// message, then the local error text, then a static fallback.
func failureMessage(err error) string {
	var remote *domain.RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	switch {
	case errors.Is(err, domain.ErrServiceNotFound):
		return "Selected service not found."
	case errors.Is(err, domain.ErrInvalidServiceDuration):
		return "Invalid service duration. Please select a valid service."
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallbackFailureMessage
}
