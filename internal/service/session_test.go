package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/malyshevd/PhotoBooker/internal/domain"
	"github.com/malyshevd/PhotoBooker/internal/service/ports/mocks"
)

func newSession(t *testing.T) (*mocks.MockServiceCatalog, *mocks.MockBookingSubmitter, *mocks.MockIntakeNotifier, *FormSession) {
	t.Helper()
	catalog, submitter, notifier, svc := newIntake(t)
	return catalog, submitter, notifier, NewFormSession(svc)
}

func fillSession(f *FormSession) {
	f.SetName("A")
	f.SetEmail("a@b.com")
	f.SetPhone("123")
	f.SelectService("svc1")
	f.SelectDate(time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC))
	f.SelectTime("10:00 AM")
	f.SetOccasion("Birthday")
}

func TestFormSession_Submit_SuccessResetsDraft(t *testing.T) {
	catalog, submitter, notifier, f := newSession(t)

	portrait := &domain.Service{ID: "svc1", Name: "Portrait Session", DurationMinutes: 120}
	catalog.EXPECT().ByID(mock.Anything, "svc1").Return(portrait, nil)
	submitter.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(&domain.SubmissionReceipt{Message: "Booking confirmed, see you soon"}, nil)
	notifier.EXPECT().NotifyBookingSubmitted(mock.Anything, mock.Anything, portrait).Return()

	fillSession(f)
	err := f.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.StateIdle, f.State())
	assert.Equal(t, domain.BannerSuccess, f.Status().Kind)
	assert.Equal(t, "Booking confirmed, see you soon", f.Status().Message)
	assert.Equal(t, domain.BookingDraft{}, f.Draft())
	assert.Empty(t, f.Errors())

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestFormSession_Submit_FallbackSuccessMessage(t *testing.T) {
	catalog, submitter, notifier, f := newSession(t)

	portrait := &domain.Service{ID: "svc1", Name: "Portrait Session", DurationMinutes: 120}
	catalog.EXPECT().ByID(mock.Anything, "svc1").Return(portrait, nil)
	submitter.EXPECT().Submit(mock.Anything, mock.Anything).Return(&domain.SubmissionReceipt{}, nil)
	notifier.EXPECT().NotifyBookingSubmitted(mock.Anything, mock.Anything, portrait).Return()

	fillSession(f)
	err := f.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Booking request sent successfully!", f.Status().Message)

	time.Sleep(50 * time.Millisecond)
}

func TestFormSession_Submit_InvalidDraft(t *testing.T) {
	_, _, _, f := newSession(t)

	err := f.Submit(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.StateIdle, f.State())
	assert.Len(t, f.Errors(), 7)
	// Field errors only, no banner.
	assert.Equal(t, domain.BannerNone, f.Status().Kind)
}

func TestFormSession_SelectDate_ClearsOnlyDateError(t *testing.T) {
	_, _, _, f := newSession(t)

	_ = f.Submit(context.Background())
	require.Len(t, f.Errors(), 7)

	f.SelectDate(time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC))

	assert.Len(t, f.Errors(), 6)
	assert.NotContains(t, f.Errors(), domain.FieldDate)
	assert.Contains(t, f.Errors(), domain.FieldName)
}

func TestFormSession_Submit_ServiceNotFoundPreservesDraft(t *testing.T) {
	catalog, _, _, f := newSession(t)

	catalog.EXPECT().ByID(mock.Anything, "svc1").Return(nil, domain.ErrServiceNotFound)

	fillSession(f)
	err := f.Submit(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
	assert.Equal(t, domain.BannerError, f.Status().Kind)
	assert.Equal(t, "Booking failed: Selected service not found.", f.Status().Message)
	assert.Equal(t, "A", f.Draft().Name)
}

func TestFormSession_Submit_InvalidDurationBanner(t *testing.T) {
	catalog, _, _, f := newSession(t)

	catalog.EXPECT().ByID(mock.Anything, "svc1").
		Return(&domain.Service{ID: "svc1", DurationMinutes: 0}, nil)

	fillSession(f)
	err := f.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Booking failed: Invalid service duration. Please select a valid service.", f.Status().Message)
}

func TestFormSession_Submit_RemoteMessageWins(t *testing.T) {
	catalog, submitter, _, f := newSession(t)

	portrait := &domain.Service{ID: "svc1", Name: "Portrait Session", DurationMinutes: 120}
	catalog.EXPECT().ByID(mock.Anything, "svc1").Return(portrait, nil)
	submitter.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(nil, &domain.RemoteError{StatusCode: 409, Message: "Slot already taken"})

	fillSession(f)
	err := f.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Booking failed: Slot already taken", f.Status().Message)
	assert.Equal(t, "a@b.com", f.Draft().Email)
}

func TestFormSession_Submit_TransportErrorText(t *testing.T) {
	catalog, submitter, _, f := newSession(t)

	portrait := &domain.Service{ID: "svc1", Name: "Portrait Session", DurationMinutes: 120}
	catalog.EXPECT().ByID(mock.Anything, "svc1").Return(portrait, nil)
	submitter.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, assert.AnError)

	fillSession(f)
	err := f.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, domain.BannerError, f.Status().Kind)
	assert.Contains(t, f.Status().Message, "Booking failed: ")
}

func TestFormSession_Submit_RejectsReentrantSubmit(t *testing.T) {
	catalog, submitter, notifier, f := newSession(t)

	portrait := &domain.Service{ID: "svc1", Name: "Portrait Session", DurationMinutes: 120}
	catalog.EXPECT().ByID(mock.Anything, "svc1").Return(portrait, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	submitter.EXPECT().Submit(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *domain.BookingRequest) (*domain.SubmissionReceipt, error) {
			close(started)
			<-release
			return &domain.SubmissionReceipt{}, nil
		})
	notifier.EXPECT().NotifyBookingSubmitted(mock.Anything, mock.Anything, portrait).Return()

	fillSession(f)

	done := make(chan error, 1)
	go func() {
		done <- f.Submit(context.Background())
	}()

	<-started
	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)

	time.Sleep(50 * time.Millisecond)
}
