package ports

import (
	"context"

	"github.com/malyshevd/PhotoBooker/internal/domain"
)

type IntakeNotifier interface {
	NotifyBookingSubmitted(ctx context.Context, req *domain.BookingRequest, service *domain.Service)
}
