package repository

import (
	"context"

	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/infra"
	"salon-loyalty/internal/infra/repository/converter"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ProfileWriteQueries interface {
	CreateProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProfileParams) (sqlc.CreateProfileRow, error)
}

type ProfileRepository struct {
	queries ProfileWriteQueries
}

func NewProfileRepository(queries ProfileWriteQueries) *ProfileRepository {
	return &ProfileRepository{queries: queries}
}

func (r *ProfileRepository) Create(ctx context.Context, tx sqlc.DBTX, p *profile.Profile) (uuid.UUID, error) {
	row, err := r.queries.CreateProfile(ctx, tx, converter.ProfileToCreateParams(p))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create profile", err)
	}
	return row.ID, nil
}
