package readstore

import (
	"context"

	"salon-loyalty/internal/infra"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
	"salon-loyalty/internal/pkg/pgconv"
	"salon-loyalty/internal/usecase/queries"

	"github.com/google/uuid"
)

type StatsReadQueries interface {
	CountLoyaltyCardsBySalon(ctx context.Context, db sqlc.DBTX, salonID uuid.UUID) (int64, error)
	SumRewardsRedeemedBySalon(ctx context.Context, db sqlc.DBTX, salonID uuid.UUID) (int64, error)
	VisitTotalsBySalon(ctx context.Context, db sqlc.DBTX, salonID uuid.UUID) (sqlc.VisitTotalsBySalonRow, error)
}

// StatsReadStore runs on the pool, so its methods are safe to call concurrently.
type StatsReadStore struct {
	queries StatsReadQueries
	db      sqlc.DBTX
}

func NewStatsReadStore(queries StatsReadQueries, db sqlc.DBTX) *StatsReadStore {
	return &StatsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StatsReadStore) CountCardsBySalon(ctx context.Context, salonID uuid.UUID) (int64, error) {
	n, err := r.queries.CountLoyaltyCardsBySalon(ctx, r.db, salonID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count loyalty cards", err)
	}
	return n, nil
}

func (r *StatsReadStore) SumRewardsRedeemedBySalon(ctx context.Context, salonID uuid.UUID) (int64, error) {
	n, err := r.queries.SumRewardsRedeemedBySalon(ctx, r.db, salonID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum rewards redeemed", err)
	}
	return n, nil
}

func (r *StatsReadStore) VisitTotalsBySalon(ctx context.Context, salonID uuid.UUID) (queries.VisitTotals, error) {
	row, err := r.queries.VisitTotalsBySalon(ctx, r.db, salonID)
	if err != nil {
		return queries.VisitTotals{}, infra.WrapRepoErr("failed to total visits", err)
	}
	cents, err := pgconv.CentsFromNumeric(row.TotalRevenue)
	if err != nil {
		return queries.VisitTotals{}, infra.WrapRepoErr("invalid revenue total", err, infra.KindDBFailure)
	}
	return queries.VisitTotals{Visits: row.TotalVisits, RevenueCents: cents}, nil
}
