package shared

import (
	"context"
	"time"

	"salon-loyalty/internal/domain/loyalty"
	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/domain/salon"
	"salon-loyalty/internal/domain/visit"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Profiles() ProfileRepository
	Salons() SalonRepository
	Visits() VisitRepository
	LoyaltyCards() LoyaltyCardRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	SalonByOwner(ctx context.Context, ownerID uuid.UUID) (*SalonSnapshot, error)
	SalonByID(ctx context.Context, id uuid.UUID) (*SalonSnapshot, error)
	ProfileByID(ctx context.Context, id uuid.UUID) (*ProfileSnapshot, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *profile.Profile) (uuid.UUID, error)
}

type SalonRepository interface {
	// UpsertByOwner returns the stored salon and whether the row was inserted.
	UpsertByOwner(ctx context.Context, tx sqlc.DBTX, s *salon.Salon) (*salon.Salon, bool, error)
}

type VisitRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, v *visit.Visit) (uuid.UUID, error)
}

type LoyaltyCardRepository interface {
	Find(ctx context.Context, tx sqlc.DBTX, customerID, salonID uuid.UUID) (*loyalty.Card, error)
	// InsertIfAbsent returns (nil, false, nil) when a card for the pair already exists.
	InsertIfAbsent(ctx context.Context, tx sqlc.DBTX, c *loyalty.Card) (*loyalty.Card, bool, error)
	// Accrue adds one visit and points to the pair's card, creating it if needed.
	Accrue(ctx context.Context, tx sqlc.DBTX, customerID, salonID uuid.UUID, points int32, now time.Time) (*loyalty.Card, bool, error)
}
