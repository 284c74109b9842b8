package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/malyshevd/PhotoBooker/internal/domain"
	"github.com/malyshevd/PhotoBooker/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newIntake(t *testing.T) (*mocks.MockServiceCatalog, *mocks.MockBookingSubmitter, *mocks.MockIntakeNotifier, *IntakeService) {
	t.Helper()
	catalog := mocks.NewMockServiceCatalog(t)
	submitter := mocks.NewMockBookingSubmitter(t)
	notifier := mocks.NewMockIntakeNotifier(t)
	svc := NewIntakeService(catalog, submitter, notifier, newTestLogger(t))
	return catalog, submitter, notifier, svc
}

func intakeDraft() *domain.BookingDraft {
	date := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	return &domain.BookingDraft{
		Name:      "A",
		Email:     "a@b.com",
		Phone:     "123",
		ServiceID: "svc1",
		Date:      &date,
		TimeSlot:  "10:00 AM",
		Occasion:  "Birthday",
	}
}

func TestIntakeService_Submit_Success(t *testing.T) {
	catalog, submitter, notifier, svc := newIntake(t)

	portrait := &domain.Service{ID: "svc1", Name: "Portrait Session", Price: 15000, DurationMinutes: 120}
	catalog.EXPECT().ByID(mock.Anything, "svc1").Return(portrait, nil)

	var sent *domain.BookingRequest
	submitter.EXPECT().Submit(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req *domain.BookingRequest) (*domain.SubmissionReceipt, error) {
			sent = req
			return &domain.SubmissionReceipt{Message: "Booking received"}, nil
		})
	notifier.EXPECT().NotifyBookingSubmitted(mock.Anything, mock.Anything, portrait).Return()

	receipt, err := svc.Submit(context.Background(), intakeDraft())

	require.NoError(t, err)
	assert.Equal(t, "Booking received", receipt.Message)

	require.NotNil(t, sent)
	assert.Equal(t, "2025-07-10", sent.BookingDate)
	assert.Equal(t, "10:00 AM", sent.StartTime)
	assert.Equal(t, "12:00", sent.EndTime)
	assert.Equal(t, "svc1", sent.ServiceID)
	assert.Equal(t, "Birthday", sent.Occasion)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestIntakeService_Submit_InvalidDraftSkipsNetwork(t *testing.T) {
	_, _, _, svc := newIntake(t)

	_, err := svc.Submit(context.Background(), &domain.BookingDraft{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var invalid *domain.InvalidDraftError
	require.ErrorAs(t, err, &invalid)
	assert.Len(t, invalid.Fields, 7)
}

func TestIntakeService_Submit_ServiceNotFound(t *testing.T) {
	catalog, _, _, svc := newIntake(t)

	catalog.EXPECT().ByID(mock.Anything, "svc1").Return(nil, domain.ErrServiceNotFound)

	_, err := svc.Submit(context.Background(), intakeDraft())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestIntakeService_Submit_ZeroDurationService(t *testing.T) {
	catalog, _, _, svc := newIntake(t)

	broken := &domain.Service{ID: "svc1", Name: "Broken", DurationMinutes: 0}
	catalog.EXPECT().ByID(mock.Anything, "svc1").Return(broken, nil)

	_, err := svc.Submit(context.Background(), intakeDraft())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidServiceDuration)
}

func TestIntakeService_Submit_MalformedSlotLabel(t *testing.T) {
	catalog, _, _, svc := newIntake(t)

	portrait := &domain.Service{ID: "svc1", Name: "Portrait Session", DurationMinutes: 120}
	catalog.EXPECT().ByID(mock.Anything, "svc1").Return(portrait, nil)

	draft := intakeDraft()
	draft.TimeSlot = "sometime in the morning"

	_, err := svc.Submit(context.Background(), draft)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedSlot)
}

func TestIntakeService_Submit_RemoteFailure(t *testing.T) {
	catalog, submitter, _, svc := newIntake(t)

	portrait := &domain.Service{ID: "svc1", Name: "Portrait Session", DurationMinutes: 120}
	catalog.EXPECT().ByID(mock.Anything, "svc1").Return(portrait, nil)
	submitter.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(nil, &domain.RemoteError{StatusCode: 409, Message: "Slot already taken"})

	_, err := svc.Submit(context.Background(), intakeDraft())

	require.Error(t, err)

	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "Slot already taken", remote.Message)
}

func TestIntakeService_Submit_TransportError(t *testing.T) {
	catalog, submitter, _, svc := newIntake(t)

	portrait := &domain.Service{ID: "svc1", Name: "Portrait Session", DurationMinutes: 120}
	catalog.EXPECT().ByID(mock.Anything, "svc1").Return(portrait, nil)
	submitter.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.Submit(context.Background(), intakeDraft())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIntakeService_Prepare_EveningRollover(t *testing.T) {
	catalog, _, _, svc := newIntake(t)

	wedding := &domain.Service{ID: "svc1", Name: "Wedding Photography", DurationMinutes: 480}
	catalog.EXPECT().ByID(mock.Anything, "svc1").Return(wedding, nil)

	draft := intakeDraft()
	draft.TimeSlot = "04:00 PM"

	req, resolved, err := svc.Prepare(context.Background(), draft)

	require.NoError(t, err)
	assert.Equal(t, wedding, resolved)
	// Wall-clock label only; the day boundary is dropped on the wire.
	assert.Equal(t, "00:00", req.EndTime)
	assert.Equal(t, "2025-07-10", req.BookingDate)
}
