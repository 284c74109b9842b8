package ports

import (
	"context"

	"github.com/malyshevd/PhotoBooker/internal/domain"
)

type BookingSubmitter interface {
	Submit(ctx context.Context, req *domain.BookingRequest) (*domain.SubmissionReceipt, error)
}
