package readstore

import (
	"context"

	"salon-loyalty/internal/infra"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
	"salon-loyalty/internal/pkg/pgconv"
	"salon-loyalty/internal/usecase/queries"

	"github.com/google/uuid"
)

type VisitReadQueries interface {
	ListRecentVisitsByCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecentVisitsByCustomerParams) ([]sqlc.ListRecentVisitsByCustomerRow, error)
}

type VisitReadStore struct {
	queries VisitReadQueries
	db      sqlc.DBTX
}

func NewVisitReadStore(queries VisitReadQueries, db sqlc.DBTX) *VisitReadStore {
	return &VisitReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VisitReadStore) ListRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]queries.VisitView, error) {
	rows, err := r.queries.ListRecentVisitsByCustomer(ctx, r.db, sqlc.ListRecentVisitsByCustomerParams{
		CustomerID: customerID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent visits", err)
	}
	out := make([]queries.VisitView, 0, len(rows))
	for _, row := range rows {
		cents, err := pgconv.CentsFromNumeric(row.Amount)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid visit amount", err, infra.KindDBFailure)
		}
		out = append(out, queries.VisitView{
			ID:           row.ID,
			SalonID:      row.SalonID,
			SalonName:    row.SalonName,
			BarberID:     pgconv.UUIDPtrFromPgtype(row.BarberID),
			BarberName:   pgconv.StringPtrFromPgtype(row.BarberName),
			ServiceType:  row.ServiceType,
			AmountCents:  cents,
			PointsEarned: row.PointsEarned,
			VisitDate:    row.VisitDate,
		})
	}
	return out, nil
}
