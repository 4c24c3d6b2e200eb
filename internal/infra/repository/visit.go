package repository

import (
	"context"

	"salon-loyalty/internal/domain/visit"
	"salon-loyalty/internal/infra"
	"salon-loyalty/internal/infra/repository/converter"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type VisitWriteQueries interface {
	CreateVisit(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVisitParams) (sqlc.Visits, error)
}

type VisitRepository struct {
	queries VisitWriteQueries
}

func NewVisitRepository(queries VisitWriteQueries) *VisitRepository {
	return &VisitRepository{queries: queries}
}

func (r *VisitRepository) Create(ctx context.Context, tx sqlc.DBTX, v *visit.Visit) (uuid.UUID, error) {
	row, err := r.queries.CreateVisit(ctx, tx, converter.VisitToCreateParams(v))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create visit", err)
	}
	return row.ID, nil
}
