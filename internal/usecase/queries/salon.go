package queries

import (
	"context"

	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/domain/qrcode"
	"salon-loyalty/internal/infra"
	"salon-loyalty/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrSalonNotFound = errs.New("salon not found")

type SalonQueries interface {
	GetOwnerSalon(ctx context.Context, ownerID uuid.UUID) (*SalonView, error)
	Stats(ctx context.Context, ownerID uuid.UUID) (*SalonStatsView, error)
	// ResolveScan previews the salon behind a QR payload before a check-in.
	ResolveScan(ctx context.Context, payload string) (*ScanView, error)
}

type SalonReadStore interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*SalonView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SalonView, error)
}

type SalonStatsReadStore interface {
	CountCardsBySalon(ctx context.Context, salonID uuid.UUID) (int64, error)
	SumRewardsRedeemedBySalon(ctx context.Context, salonID uuid.UUID) (int64, error)
	VisitTotalsBySalon(ctx context.Context, salonID uuid.UUID) (VisitTotals, error)
}

type salonQueriesImpl struct {
	salons   SalonReadStore
	stats    SalonStatsReadStore
	profiles ProfileReadStore
}

func NewSalonQueries(salons SalonReadStore, stats SalonStatsReadStore, profiles ProfileReadStore) SalonQueries {
	return &salonQueriesImpl{
		salons:   salons,
		stats:    stats,
		profiles: profiles,
	}
}

func (q *salonQueriesImpl) GetOwnerSalon(ctx context.Context, ownerID uuid.UUID) (*SalonView, error) {
	s, err := q.salons.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsNotFound(err) {
			return nil, ErrSalonNotFound
		}
		return nil, err
	}
	return s, nil
}

// Stats runs the three aggregate reads concurrently. The first failure
// cancels the rest.
func (q *salonQueriesImpl) Stats(ctx context.Context, ownerID uuid.UUID) (*SalonStatsView, error) {
	s, err := q.GetOwnerSalon(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var (
		stats  SalonStatsView
		totals VisitTotals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := q.stats.CountCardsBySalon(gctx, s.ID)
		if err != nil {
			return errs.Wrap(err, "count cards")
		}
		stats.TotalCustomers = n
		return nil
	})
	g.Go(func() error {
		t, err := q.stats.VisitTotalsBySalon(gctx, s.ID)
		if err != nil {
			return errs.Wrap(err, "visit totals")
		}
		totals = t
		return nil
	})
	g.Go(func() error {
		n, err := q.stats.SumRewardsRedeemedBySalon(gctx, s.ID)
		if err != nil {
			return errs.Wrap(err, "sum rewards redeemed")
		}
		stats.RewardsRedeemed = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.TotalVisits = totals.Visits
	stats.TotalRevenueCents = totals.RevenueCents
	return &stats, nil
}

func (q *salonQueriesImpl) ResolveScan(ctx context.Context, payload string) (*ScanView, error) {
	ownerRef, err := qrcode.Decode(payload)
	if err != nil {
		return nil, err
	}
	ownerID, err := uuid.Parse(ownerRef)
	if err != nil {
		return nil, ErrSalonNotFound
	}

	s, err := q.GetOwnerSalon(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	barbers, err := q.profiles.ListByRole(ctx, profile.RoleBarber)
	if err != nil {
		return nil, err
	}
	if barbers == nil {
		barbers = []BarberView{}
	}

	return &ScanView{Salon: *s, Barbers: barbers}, nil
}
