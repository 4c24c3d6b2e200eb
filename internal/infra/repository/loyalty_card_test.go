//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-loyalty/internal/domain/loyalty"
	"salon-loyalty/internal/infra"
	"salon-loyalty/internal/infra/repository"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
	repositorymock "salon-loyalty/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Accrue Tests
// =============================================================================

func TestLoyaltyCardRepository_Accrue(t *testing.T) {
	ctx := context.Background()
	customerID, salonID := uuid.New(), uuid.New()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		points      int32
		setupMock   func(*repositorymock.MockLoyaltyCardWriteQueries, sqlc.DBTX)
		wantCreated bool
		wantVisits  int32
		wantPoints  int64
		expectErrIs error
		expectKind  infra.RepositoryErrorKind
	}{
		{
			name:   "success: first visit inserts the card",
			points: 25,
			setupMock: func(m *repositorymock.MockLoyaltyCardWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().AccrueLoyaltyCard(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.AccrueLoyaltyCardParams) (sqlc.AccrueLoyaltyCardRow, error) {
						assert.Equal(t, customerID, arg.CustomerID)
						assert.Equal(t, salonID, arg.SalonID)
						assert.Equal(t, int64(25), arg.TotalPoints)
						assert.Equal(t, now, arg.CreatedAt)
						return sqlc.AccrueLoyaltyCardRow{
							ID: arg.ID, CustomerID: customerID, SalonID: salonID,
							TotalVisits: 1, TotalPoints: 25, CreatedAt: now, UpdatedAt: now,
							Inserted: true,
						}, nil
					})
			},
			wantCreated: true,
			wantVisits:  1,
			wantPoints:  25,
		},
		{
			name:   "success: existing card is incremented",
			points: 9,
			setupMock: func(m *repositorymock.MockLoyaltyCardWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().AccrueLoyaltyCard(ctx, tx, gomock.Any()).Return(sqlc.AccrueLoyaltyCardRow{
					ID: uuid.New(), CustomerID: customerID, SalonID: salonID,
					TotalVisits: 2, TotalPoints: 34, Inserted: false,
				}, nil)
			},
			wantVisits: 2,
			wantPoints: 34,
		},
		{
			name:        "error: negative points never reach the database",
			points:      -1,
			setupMock:   func(*repositorymock.MockLoyaltyCardWriteQueries, sqlc.DBTX) {},
			expectErrIs: loyalty.ErrNegativePoints,
		},
		{
			name:   "error: foreign key violated",
			points: 5,
			setupMock: func(m *repositorymock.MockLoyaltyCardWriteQueries, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				m.EXPECT().AccrueLoyaltyCard(ctx, tx, gomock.Any()).Return(sqlc.AccrueLoyaltyCardRow{}, fk)
			},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:   "error: database error occurs",
			points: 5,
			setupMock: func(m *repositorymock.MockLoyaltyCardWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().AccrueLoyaltyCard(ctx, tx, gomock.Any()).Return(sqlc.AccrueLoyaltyCardRow{}, errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockLoyaltyCardWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewLoyaltyCardRepository(mockQueries)
			tc.setupMock(mockQueries, mockDB)

			card, created, err := repo.Accrue(ctx, mockDB, customerID, salonID, tc.points, now)

			switch {
			case tc.expectErrIs != nil:
				require.ErrorIs(t, err, tc.expectErrIs)
				assert.Nil(t, card)
			case tc.expectKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, card)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.wantCreated, created)
				assert.Equal(t, tc.wantVisits, card.TotalVisits())
				assert.Equal(t, tc.wantPoints, card.TotalPoints())
			}
		})
	}
}

// =============================================================================
// InsertIfAbsent Tests
// =============================================================================

func TestLoyaltyCardRepository_InsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	card := loyalty.NewCard(uuid.New(), uuid.New(), now)

	t.Run("inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockLoyaltyCardWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().InsertLoyaltyCardIfAbsent(ctx, mockDB, sqlc.InsertLoyaltyCardIfAbsentParams{
			ID: card.ID(), CustomerID: card.CustomerID(), SalonID: card.SalonID(), CreatedAt: now,
		}).Return(sqlc.LoyaltyCards{ID: card.ID(), CustomerID: card.CustomerID(), SalonID: card.SalonID(), CreatedAt: now, UpdatedAt: now}, nil)

		got, inserted, err := repository.NewLoyaltyCardRepository(mockQueries).InsertIfAbsent(ctx, mockDB, card)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.Equal(t, card.ID(), got.ID())
	})

	t.Run("conflict returns no card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockLoyaltyCardWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().InsertLoyaltyCardIfAbsent(ctx, mockDB, gomock.Any()).Return(sqlc.LoyaltyCards{}, pgx.ErrNoRows)

		got, inserted, err := repository.NewLoyaltyCardRepository(mockQueries).InsertIfAbsent(ctx, mockDB, card)
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.Nil(t, got)
	})
}

func TestLoyaltyCardRepository_Find(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockLoyaltyCardWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewLoyaltyCardRepository(mockQueries)
	customerID, salonID := uuid.New(), uuid.New()

	mockQueries.EXPECT().FindLoyaltyCard(ctx, mockDB, sqlc.FindLoyaltyCardParams{CustomerID: customerID, SalonID: salonID}).
		Return(sqlc.LoyaltyCards{}, pgx.ErrNoRows)

	_, err := repo.Find(ctx, mockDB, customerID, salonID)
	assert.True(t, infra.IsNotFound(err))
}
