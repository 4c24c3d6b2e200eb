package repository

import (
	"context"
	"time"

	"salon-loyalty/internal/domain/loyalty"
	"salon-loyalty/internal/infra"
	"salon-loyalty/internal/infra/repository/converter"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
	"salon-loyalty/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LoyaltyCardWriteQueries interface {
	FindLoyaltyCard(ctx context.Context, db sqlc.DBTX, arg sqlc.FindLoyaltyCardParams) (sqlc.LoyaltyCards, error)
	InsertLoyaltyCardIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertLoyaltyCardIfAbsentParams) (sqlc.LoyaltyCards, error)
	AccrueLoyaltyCard(ctx context.Context, db sqlc.DBTX, arg sqlc.AccrueLoyaltyCardParams) (sqlc.AccrueLoyaltyCardRow, error)
}

type LoyaltyCardRepository struct {
	queries LoyaltyCardWriteQueries
}

func NewLoyaltyCardRepository(queries LoyaltyCardWriteQueries) *LoyaltyCardRepository {
	return &LoyaltyCardRepository{queries: queries}
}

func (r *LoyaltyCardRepository) Find(ctx context.Context, tx sqlc.DBTX, customerID, salonID uuid.UUID) (*loyalty.Card, error) {
	row, err := r.queries.FindLoyaltyCard(ctx, tx, sqlc.FindLoyaltyCardParams{
		CustomerID: customerID,
		SalonID:    salonID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find loyalty card", err)
	}
	return converter.CardFromModel(row), nil
}

func (r *LoyaltyCardRepository) InsertIfAbsent(ctx context.Context, tx sqlc.DBTX, c *loyalty.Card) (*loyalty.Card, bool, error) {
	row, err := r.queries.InsertLoyaltyCardIfAbsent(ctx, tx, sqlc.InsertLoyaltyCardIfAbsentParams{
		ID:         c.ID(),
		CustomerID: c.CustomerID(),
		SalonID:    c.SalonID(),
		CreatedAt:  c.CreatedAt(),
	})
	if err != nil {
		// ON CONFLICT DO NOTHING returns no row when the card already exists.
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to create loyalty card", err)
	}
	return converter.CardFromModel(row), true, nil
}

func (r *LoyaltyCardRepository) Accrue(ctx context.Context, tx sqlc.DBTX, customerID, salonID uuid.UUID, points int32, now time.Time) (*loyalty.Card, bool, error) {
	if points < 0 {
		return nil, false, loyalty.ErrNegativePoints
	}
	row, err := r.queries.AccrueLoyaltyCard(ctx, tx, sqlc.AccrueLoyaltyCardParams{
		ID:          uuid.New(),
		CustomerID:  customerID,
		SalonID:     salonID,
		TotalPoints: int64(points),
		CreatedAt:   now,
	})
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to accrue loyalty card", err)
	}
	return converter.CardFromAccrueRow(row), row.Inserted, nil
}
