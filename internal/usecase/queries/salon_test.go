//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/domain/qrcode"
	"salon-loyalty/internal/infra"
	"salon-loyalty/internal/usecase/queries"
	"salon-loyalty/tests/common/builder"
	queriesmock "salon-loyalty/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

type salonMocks struct {
	salons   *queriesmock.MockSalonReadStore
	stats    *queriesmock.MockSalonStatsReadStore
	profiles *queriesmock.MockProfileReadStore
}

func newSalonQueries(t *testing.T) (queries.SalonQueries, salonMocks) {
	ctrl := gomock.NewController(t)
	m := salonMocks{
		salons:   queriesmock.NewMockSalonReadStore(ctrl),
		stats:    queriesmock.NewMockSalonStatsReadStore(ctrl),
		profiles: queriesmock.NewMockProfileReadStore(ctrl),
	}
	return queries.NewSalonQueries(m.salons, m.stats, m.profiles), m
}

func notFound() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows)
}

func TestSalonQueries_GetOwnerSalon(t *testing.T) {
	ctx := context.Background()
	view := builder.NewSalonBuilder().BuildReadModel()

	t.Run("found", func(t *testing.T) {
		q, m := newSalonQueries(t)
		m.salons.EXPECT().FindByOwner(ctx, view.OwnerID).Return(view, nil)

		got, err := q.GetOwnerSalon(ctx, view.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("not found", func(t *testing.T) {
		q, m := newSalonQueries(t)
		m.salons.EXPECT().FindByOwner(ctx, view.OwnerID).Return(nil, notFound())

		_, err := q.GetOwnerSalon(ctx, view.OwnerID)
		assert.ErrorIs(t, err, queries.ErrSalonNotFound)
	})

	t.Run("db failure passes through", func(t *testing.T) {
		q, m := newSalonQueries(t)
		m.salons.EXPECT().FindByOwner(ctx, view.OwnerID).Return(nil, infra.WrapRepoErr("find", errDBConnectionLost))

		_, err := q.GetOwnerSalon(ctx, view.OwnerID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestSalonQueries_Stats(t *testing.T) {
	ctx := context.Background()
	view := builder.NewSalonBuilder().BuildReadModel()

	t.Run("aggregates", func(t *testing.T) {
		q, m := newSalonQueries(t)
		m.salons.EXPECT().FindByOwner(ctx, view.OwnerID).Return(view, nil)
		m.stats.EXPECT().CountCardsBySalon(gomock.Any(), view.ID).Return(int64(3), nil)
		m.stats.EXPECT().VisitTotalsBySalon(gomock.Any(), view.ID).Return(queries.VisitTotals{Visits: 7, RevenueCents: 15_950}, nil)
		m.stats.EXPECT().SumRewardsRedeemedBySalon(gomock.Any(), view.ID).Return(int64(0), nil)

		got, err := q.Stats(ctx, view.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, &queries.SalonStatsView{
			TotalCustomers:    3,
			TotalVisits:       7,
			TotalRevenueCents: 15_950,
			RewardsRedeemed:   0,
		}, got)
	})

	t.Run("empty salon", func(t *testing.T) {
		q, m := newSalonQueries(t)
		m.salons.EXPECT().FindByOwner(ctx, view.OwnerID).Return(view, nil)
		m.stats.EXPECT().CountCardsBySalon(gomock.Any(), view.ID).Return(int64(0), nil)
		m.stats.EXPECT().VisitTotalsBySalon(gomock.Any(), view.ID).Return(queries.VisitTotals{}, nil)
		m.stats.EXPECT().SumRewardsRedeemedBySalon(gomock.Any(), view.ID).Return(int64(0), nil)

		got, err := q.Stats(ctx, view.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, &queries.SalonStatsView{}, got)
	})

	t.Run("one failing read fails the whole call", func(t *testing.T) {
		q, m := newSalonQueries(t)
		m.salons.EXPECT().FindByOwner(ctx, view.OwnerID).Return(view, nil)
		m.stats.EXPECT().CountCardsBySalon(gomock.Any(), view.ID).Return(int64(3), nil).AnyTimes()
		m.stats.EXPECT().VisitTotalsBySalon(gomock.Any(), view.ID).Return(queries.VisitTotals{}, errDBConnectionLost)
		m.stats.EXPECT().SumRewardsRedeemedBySalon(gomock.Any(), view.ID).Return(int64(0), nil).AnyTimes()

		got, err := q.Stats(ctx, view.OwnerID)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, errDBConnectionLost)
	})

	t.Run("owner without salon", func(t *testing.T) {
		q, m := newSalonQueries(t)
		m.salons.EXPECT().FindByOwner(ctx, view.OwnerID).Return(nil, notFound())

		_, err := q.Stats(ctx, view.OwnerID)
		assert.ErrorIs(t, err, queries.ErrSalonNotFound)
	})
}

func TestSalonQueries_ResolveScan(t *testing.T) {
	ctx := context.Background()
	view := builder.NewSalonBuilder().BuildReadModel()
	name := "Sam"
	barbers := []queries.BarberView{{ID: uuid.New(), FullName: &name}}

	t.Run("salon and barbers", func(t *testing.T) {
		q, m := newSalonQueries(t)
		m.salons.EXPECT().FindByOwner(ctx, view.OwnerID).Return(view, nil)
		m.profiles.EXPECT().ListByRole(ctx, profile.RoleBarber).Return(barbers, nil)

		got, err := q.ResolveScan(ctx, view.QRCode)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.Salon.ID)
		assert.Equal(t, barbers, got.Barbers)
	})

	t.Run("no barbers gives an empty list", func(t *testing.T) {
		q, m := newSalonQueries(t)
		m.salons.EXPECT().FindByOwner(ctx, view.OwnerID).Return(view, nil)
		m.profiles.EXPECT().ListByRole(ctx, profile.RoleBarber).Return(nil, nil)

		got, err := q.ResolveScan(ctx, view.QRCode)
		require.NoError(t, err)
		assert.NotNil(t, got.Barbers)
		assert.Empty(t, got.Barbers)
	})

	t.Run("malformed payload", func(t *testing.T) {
		q, _ := newSalonQueries(t)

		_, err := q.ResolveScan(ctx, "%%%")
		assert.ErrorIs(t, err, qrcode.ErrInvalidPayload)
	})

	t.Run("owner segment is not a uuid", func(t *testing.T) {
		q, _ := newSalonQueries(t)

		_, err := q.ResolveScan(ctx, qrcode.Encode(builder.TestPublicOrigin, "nope"))
		assert.ErrorIs(t, err, queries.ErrSalonNotFound)
	})

	t.Run("unknown owner", func(t *testing.T) {
		q, m := newSalonQueries(t)
		m.salons.EXPECT().FindByOwner(ctx, view.OwnerID).Return(nil, notFound())

		_, err := q.ResolveScan(ctx, view.QRCode)
		assert.ErrorIs(t, err, queries.ErrSalonNotFound)
	})
}
