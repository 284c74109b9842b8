// Package catalog keeps an in-memory snapshot of the studio's reference
// data: the service catalog and the blackout-date exclusion set. The
// snapshot is loaded once at boot and refreshed in the background; the
// intake flow only ever reads it.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/malyshevd/PhotoBooker/internal/domain"
	"github.com/malyshevd/PhotoBooker/internal/timeslot"
)

// Source is where the snapshot is loaded from.
type Source interface {
	Services(ctx context.Context) ([]domain.Service, error)
	BlackoutDates(ctx context.Context) ([]time.Time, error)
}

type Store struct {
	source Source
	logger logger.Logger

	mu           sync.RWMutex
	services     []domain.Service
	byID         map[string]domain.Service
	availability *timeslot.Availability
}

func NewStore(source Source, log logger.Logger) *Store {
	return &Store{
		source:       source,
		logger:       log,
		byID:         map[string]domain.Service{},
		availability: timeslot.NewAvailability(nil, nil),
	}
}

// Reload replaces the snapshot with fresh data from the source. Both reads
// must succeed; on error the previous snapshot stays in place.
func (s *Store) Reload(ctx context.Context) error {
	services, err := s.source.Services(ctx)
	if err != nil {
		return fmt.Errorf("load services: %w", err)
	}

	blackouts, err := s.source.BlackoutDates(ctx)
	if err != nil {
		return fmt.Errorf("load blackout dates: %w", err)
	}

	byID := make(map[string]domain.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	s.mu.Lock()
	s.services = services
	s.byID = byID
	s.availability = timeslot.NewAvailability(blackouts, nil)
	s.mu.Unlock()

	s.logger.Info("catalog snapshot reloaded",
		logger.Int("services", len(services)),
		logger.Int("blackout_dates", len(blackouts)),
	)

	return nil
}

// ByID resolves a service identifier against the snapshot.
func (s *Store) ByID(_ context.Context, id string) (*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	return &svc, nil
}

// List returns the catalog in its source order.
func (s *Store) List(_ context.Context) ([]domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Service, len(s.services))
	copy(out, s.services)
	return out, nil
}

// Availability returns the date predicate built from the current snapshot.
func (s *Store) Availability() *timeslot.Availability {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.availability
}
