package queries

import (
	"context"

	"salon-loyalty/internal/domain/loyalty"

	"github.com/google/uuid"
)

const (
	DefaultRecentVisits = 5
	MaxRecentVisits     = 50
)

type CustomerQueries interface {
	ListCards(ctx context.Context, customerID uuid.UUID) ([]CardView, error)
	RecentVisits(ctx context.Context, customerID uuid.UUID, limit int) ([]VisitView, error)
}

type LoyaltyCardReadStore interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]CardView, error)
}

type VisitReadStore interface {
	ListRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]VisitView, error)
}

type customerQueriesImpl struct {
	cards  LoyaltyCardReadStore
	visits VisitReadStore
}

func NewCustomerQueries(cards LoyaltyCardReadStore, visits VisitReadStore) CustomerQueries {
	return &customerQueriesImpl{
		cards:  cards,
		visits: visits,
	}
}

func (q *customerQueriesImpl) ListCards(ctx context.Context, customerID uuid.UUID) ([]CardView, error) {
	cards, err := q.cards.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]CardView, 0, len(cards))
	for _, c := range cards {
		p := loyalty.NewProgress(c.TotalVisits, c.LoyaltyThreshold)
		c.VisitsNeeded = p.VisitsNeeded
		c.ProgressPercent = p.Percent
		c.RewardReady = p.RewardReady
		out = append(out, c)
	}
	return out, nil
}

// RecentVisits clamps limit to [1, MaxRecentVisits]; zero or less means the default.
func (q *customerQueriesImpl) RecentVisits(ctx context.Context, customerID uuid.UUID, limit int) ([]VisitView, error) {
	switch {
	case limit <= 0:
		limit = DefaultRecentVisits
	case limit > MaxRecentVisits:
		limit = MaxRecentVisits
	}
	visits, err := q.visits.ListRecentByCustomer(ctx, customerID, int32(limit))
	if err != nil {
		return nil, err
	}
	if visits == nil {
		visits = []VisitView{}
	}
	return visits, nil
}
