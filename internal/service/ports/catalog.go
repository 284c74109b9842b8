package ports

import (
	"context"

	"github.com/malyshevd/PhotoBooker/internal/domain"
)

type ServiceCatalog interface {
	ByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]domain.Service, error)
}
