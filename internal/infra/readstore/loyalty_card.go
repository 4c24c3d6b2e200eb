package readstore

import (
	"context"

	"salon-loyalty/internal/infra"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
	"salon-loyalty/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoyaltyCardReadQueries interface {
	ListLoyaltyCardsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.ListLoyaltyCardsByCustomerRow, error)
}

type LoyaltyCardReadStore struct {
	queries LoyaltyCardReadQueries
	db      sqlc.DBTX
}

func NewLoyaltyCardReadStore(queries LoyaltyCardReadQueries, db sqlc.DBTX) *LoyaltyCardReadStore {
	return &LoyaltyCardReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LoyaltyCardReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]queries.CardView, error) {
	rows, err := r.queries.ListLoyaltyCardsByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list loyalty cards", err)
	}
	out := make([]queries.CardView, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.CardView{
			ID:                row.ID,
			SalonID:           row.SalonID,
			SalonName:         row.SalonName,
			SalonAddress:      row.SalonAddress,
			LoyaltyThreshold:  row.LoyaltyThreshold,
			RewardDescription: row.RewardDescription,
			TotalVisits:       row.TotalVisits,
			TotalPoints:       row.TotalPoints,
			RewardsRedeemed:   row.RewardsRedeemed,
			UpdatedAt:         row.UpdatedAt,
		})
	}
	return out, nil
}
