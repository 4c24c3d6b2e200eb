package readstore

import (
	"context"

	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/infra"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
	"salon-loyalty/internal/pkg/pgconv"
	"salon-loyalty/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProfileReadQueries interface {
	FindProfileByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindProfileByIDRow, error)
	FindProfileByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Profiles, error)
	ListProfilesByRole(ctx context.Context, db sqlc.DBTX, role string) ([]sqlc.ListProfilesByRoleRow, error)
}

type ProfileReadStore struct {
	queries ProfileReadQueries
	db      sqlc.DBTX
}

func NewProfileReadStore(queries ProfileReadQueries, db sqlc.DBTX) *ProfileReadStore {
	return &ProfileReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProfileReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProfileView, error) {
	row, err := r.queries.FindProfileByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find profile by ID", err)
	}
	return &queries.ProfileView{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  pgconv.StringPtrFromPgtype(row.FullName),
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		Role:      row.Role,
		CreatedAt: row.CreatedAt,
	}, nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *ProfileReadStore) FindByEmail(ctx context.Context, email string) (*queries.ProfileView, string, error) {
	row, err := r.queries.FindProfileByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find profile by email", err)
	}
	return &queries.ProfileView{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  pgconv.StringPtrFromPgtype(row.FullName),
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		Role:      row.Role,
		CreatedAt: row.CreatedAt,
	}, row.PasswordHash, nil
}

func (r *ProfileReadStore) ListByRole(ctx context.Context, role profile.Role) ([]queries.BarberView, error) {
	rows, err := r.queries.ListProfilesByRole(ctx, r.db, role.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list profiles by role", err)
	}
	out := make([]queries.BarberView, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.BarberView{
			ID:       row.ID,
			FullName: pgconv.StringPtrFromPgtype(row.FullName),
		})
	}
	return out, nil
}
