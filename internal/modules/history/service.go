// README: Trip history service.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tripgen/internal/types"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Record persists one successful generation and returns the new record id.
func (s *Service) Record(ctx context.Context, req *types.TripRequest, res *types.GenerationResult) (uuid.UUID, error) {
	rec := &TripRecord{
		ID:           uuid.New(),
		Destination:  req.Destination,
		DurationDays: req.Duration,
		TotalCostUSD: res.CostSummary.TotalCostUSD,
		Request:      *req,
		Result:       *res,
		CreatedAt:    time.Now().UTC(),
	}
	return rec.ID, s.store.Insert(ctx, rec)
}

// Recent lists the latest generated trips, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]TripSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.store.List(ctx, limit)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*TripRecord, error) {
	return s.store.Get(ctx, id)
}
