package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/malyshevd/PhotoBooker/internal/domain"
	"github.com/malyshevd/PhotoBooker/internal/form"
	"github.com/malyshevd/PhotoBooker/internal/service/ports"
	"github.com/malyshevd/PhotoBooker/internal/timeslot"
)

// IntakeService turns a booking draft into a request against the remote
// booking service. Prepare runs every local check and builds the payload;
// Forward performs the one network call. Submit composes the two. The
// service holds no per-form state; FormSession owns that.
type IntakeService struct {
	catalog   ports.ServiceCatalog
	submitter ports.BookingSubmitter
	notifier  ports.IntakeNotifier
	logger    logger.Logger
}

func NewIntakeService(
	catalog ports.ServiceCatalog,
	submitter ports.BookingSubmitter,
	notifier ports.IntakeNotifier,
	logger logger.Logger,
) *IntakeService {
	return &IntakeService{
		catalog:   catalog,
		submitter: submitter,
		notifier:  notifier,
		logger:    logger,
	}
}

// Prepare validates the draft, resolves the selected service and derives the
// appointment interval. Validation failures come back as
// *domain.InvalidDraftError; lookup and parsing failures as their domain
// sentinels. No network call is made here.
func (s *IntakeService) Prepare(ctx context.Context, draft *domain.BookingDraft) (*domain.BookingRequest, *domain.Service, error) {
	if errs := form.Validate(draft); !errs.Valid() {
		return nil, nil, &domain.InvalidDraftError{Fields: errs}
	}

	svc, err := s.catalog.ByID(ctx, draft.ServiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve service: %w", err)
	}
	if svc.DurationMinutes <= 0 {
		return nil, nil, fmt.Errorf("%w: service %s has duration %d",
			domain.ErrInvalidServiceDuration, svc.ID, svc.DurationMinutes)
	}

	interval, err := timeslot.Derive(
		*draft.Date,
		draft.TimeSlot,
		time.Duration(svc.DurationMinutes)*time.Minute,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("derive interval: %w", err)
	}

	req := &domain.BookingRequest{
		Name:        draft.Name,
		Email:       draft.Email,
		Phone:       draft.Phone,
		ServiceID:   draft.ServiceID,
		BookingDate: draft.Date.Format("2006-01-02"),
		StartTime:   draft.TimeSlot,
		EndTime:     interval.EndLabel(),
		Occasion:    draft.Occasion,
		Notes:       draft.Notes,
	}

	return req, svc, nil
}

// Forward submits a prepared request to the remote booking service, exactly
// once, with no automatic retry. On success the studio is notified in the
// background.
func (s *IntakeService) Forward(ctx context.Context, req *domain.BookingRequest, svc *domain.Service) (*domain.SubmissionReceipt, error) {
	receipt, err := s.submitter.Submit(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("submit booking: %w", err)
	}

	s.logger.Info("booking request forwarded",
		logger.String("service_id", req.ServiceID),
		logger.String("booking_date", req.BookingDate),
		logger.String("start_time", req.StartTime),
		logger.String("end_time", req.EndTime),
	)

	go s.notifier.NotifyBookingSubmitted(context.WithoutCancel(ctx), req, svc)

	return receipt, nil
}

// Submit runs the full pipeline for one attempt.
func (s *IntakeService) Submit(ctx context.Context, draft *domain.BookingDraft) (*domain.SubmissionReceipt, error) {
	req, svc, err := s.Prepare(ctx, draft)
	if err != nil {
		return nil, err
	}
	return s.Forward(ctx, req, svc)
}
