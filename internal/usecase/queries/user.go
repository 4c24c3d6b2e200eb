package queries

import (
	"context"

	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/infra"
	"salon-loyalty/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errs.New("profile not found")

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	ListBarbers(ctx context.Context) ([]BarberView, error)
}

type ProfileReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProfileView, error)
	FindByEmail(ctx context.Context, email string) (*ProfileView, string, error)
	ListByRole(ctx context.Context, role profile.Role) ([]BarberView, error)
}

type userQueriesImpl struct {
	readStore ProfileReadStore
}

func NewUserQueries(readStore ProfileReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	p, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (q *userQueriesImpl) ListBarbers(ctx context.Context) ([]BarberView, error) {
	barbers, err := q.readStore.ListByRole(ctx, profile.RoleBarber)
	if err != nil {
		return nil, err
	}
	if barbers == nil {
		barbers = []BarberView{}
	}
	return barbers, nil
}
