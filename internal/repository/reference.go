package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/malyshevd/PhotoBooker/internal/domain"
)

// ReferenceRepository reads the studio's reference data: the service catalog
// and the blackout dates. Both tables are seeded by migrations and edited
// out-of-band; the intake flow never writes them.
type ReferenceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReferenceRepo(db *dbpg.DB) *ReferenceRepository {
	return &ReferenceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReferenceRepository) Services(ctx context.Context) ([]domain.Service, error) {
	query := `SELECT id, name, price, duration_minutes
			  FROM services
			  ORDER BY position, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var res []domain.Service
	for rows.Next() {
		var s domain.Service
		if err = rows.Scan(&s.ID, &s.Name, &s.Price, &s.DurationMinutes); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *ReferenceRepository) BlackoutDates(ctx context.Context) ([]time.Time, error) {
	query := `SELECT day FROM blackout_dates ORDER BY day`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list blackout dates: %w", err)
	}
	defer rows.Close()

	var res []time.Time
	for rows.Next() {
		var day time.Time
		if err = rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("scan blackout date: %w", err)
		}
		res = append(res, day)
	}

	return res, rows.Err()
}
