//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for command tests.
// Within runs against a copy of the state and only publishes it on success,
// so a failed callback leaves no partial writes behind.
package memstore

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"salon-loyalty/internal/domain/loyalty"
	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/domain/salon"
	"salon-loyalty/internal/domain/visit"
	"salon-loyalty/internal/infra"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
	"salon-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProfileRecord struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
}

type VisitRecord struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	SalonID      uuid.UUID
	BarberID     *uuid.UUID
	ServiceType  string
	AmountCents  int64
	PointsEarned int32
	VisitDate    time.Time
}

type CardRecord struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	SalonID         uuid.UUID
	TotalVisits     int32
	TotalPoints     int64
	RewardsRedeemed int32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type cardKey struct {
	customerID uuid.UUID
	salonID    uuid.UUID
}

type state struct {
	profiles map[uuid.UUID]ProfileRecord
	salons   map[uuid.UUID]shared.SalonSnapshot // by owner id
	created  map[uuid.UUID]time.Time            // salon created_at by owner id
	visits   []VisitRecord
	cards    map[cardKey]CardRecord
}

func (s state) clone() state {
	return state{
		profiles: maps.Clone(s.profiles),
		salons:   maps.Clone(s.salons),
		created:  maps.Clone(s.created),
		visits:   slices.Clone(s.visits),
		cards:    maps.Clone(s.cards),
	}
}

// Store implements shared.UnitOfWork.
type Store struct {
	mu    sync.Mutex
	state state

	// Failure injection for write paths.
	FailVisitCreate error
	FailAccrue      error
	FailSalonRead   error
	FailCardFind    error
	// Set by InsertIfAbsent to simulate a concurrent writer that created the card
	// between Find and insert.
	RaceOnInsert bool

	Commits   int
	Rollbacks int
}

func New() *Store {
	return &Store{state: state{
		profiles: map[uuid.UUID]ProfileRecord{},
		salons:   map[uuid.UUID]shared.SalonSnapshot{},
		created:  map[uuid.UUID]time.Time{},
		cards:    map[cardKey]CardRecord{},
	}}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, st: s.state.clone()}
	if err := fn(ctx, tx); err != nil {
		s.Rollbacks++
		return err
	}
	s.state = tx.st
	s.Commits++
	return nil
}

// Seeding and inspection helpers.

func (s *Store) AddProfile(id uuid.UUID, role profile.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.profiles[id] = ProfileRecord{ID: id, Email: id.String() + "@example.com", Role: role.String()}
}

func (s *Store) AddSalon(snap shared.SalonSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.salons[snap.OwnerID] = snap
	s.state.created[snap.OwnerID] = time.Time{}
}

func (s *Store) AddCard(c CardRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.cards[cardKey{c.CustomerID, c.SalonID}] = c
}

func (s *Store) Visits() []VisitRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.visits)
}

func (s *Store) Cards() []CardRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.state.cards))
}

func (s *Store) Card(customerID, salonID uuid.UUID) (CardRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.state.cards[cardKey{customerID, salonID}]
	return c, ok
}

func (s *Store) Profiles() []ProfileRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.state.profiles))
}

func (s *Store) Salon(ownerID uuid.UUID) (shared.SalonSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.state.salons[ownerID]
	return snap, ok
}

type memTx struct {
	store *Store
	st    state
}

func (t *memTx) Profiles() shared.ProfileRepository         { return t }
func (t *memTx) Salons() shared.SalonRepository             { return (*salonRepo)(t) }
func (t *memTx) Visits() shared.VisitRepository             { return (*visitRepo)(t) }
func (t *memTx) LoyaltyCards() shared.LoyaltyCardRepository { return (*cardRepo)(t) }
func (t *memTx) Reads() shared.CommandReads                 { return t }
func (t *memTx) DB() sqlc.DBTX                              { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows)
}

func (t *memTx) Create(_ context.Context, _ sqlc.DBTX, p *profile.Profile) (uuid.UUID, error) {
	for _, existing := range t.st.profiles {
		if existing.Email == p.Email().Value() {
			return uuid.Nil, infra.WrapRepoErr("failed to create profile", errors.New("duplicate email"), infra.KindDuplicateKey)
		}
	}
	t.st.profiles[p.ID()] = ProfileRecord{
		ID:           p.ID(),
		Email:        p.Email().Value(),
		PasswordHash: p.PasswordHash(),
		Role:         p.Role().String(),
	}
	return p.ID(), nil
}

func (t *memTx) SalonByOwner(_ context.Context, ownerID uuid.UUID) (*shared.SalonSnapshot, error) {
	if t.store.FailSalonRead != nil {
		return nil, infra.WrapRepoErr("failed to find salon by owner", t.store.FailSalonRead)
	}
	snap, ok := t.st.salons[ownerID]
	if !ok {
		return nil, notFound("salon not found")
	}
	return &snap, nil
}

func (t *memTx) SalonByID(_ context.Context, id uuid.UUID) (*shared.SalonSnapshot, error) {
	for _, snap := range t.st.salons {
		if snap.ID == id {
			return &snap, nil
		}
	}
	return nil, notFound("salon not found")
}

func (t *memTx) ProfileByID(_ context.Context, id uuid.UUID) (*shared.ProfileSnapshot, error) {
	p, ok := t.st.profiles[id]
	if !ok {
		return nil, notFound("profile not found")
	}
	return &shared.ProfileSnapshot{ID: p.ID, Role: p.Role}, nil
}

type salonRepo memTx

func (r *salonRepo) UpsertByOwner(_ context.Context, _ sqlc.DBTX, s *salon.Salon) (*salon.Salon, bool, error) {
	d := s.Details()
	existing, found := r.st.salons[s.OwnerID()]
	snap := shared.SalonSnapshot{
		ID:                s.ID(),
		OwnerID:           s.OwnerID(),
		Name:              d.Name,
		Address:           d.Address,
		Phone:             d.Phone,
		QRCode:            s.QRCode(),
		LoyaltyThreshold:  d.Threshold.Value(),
		RewardDescription: d.RewardDescription,
	}
	createdAt := s.CreatedAt()
	if found {
		snap.ID = existing.ID
		snap.QRCode = existing.QRCode
		createdAt = r.st.created[s.OwnerID()]
	}
	r.st.salons[s.OwnerID()] = snap
	r.st.created[s.OwnerID()] = createdAt
	return salon.ReconstructSalon(snap.ID, snap.OwnerID, d, snap.QRCode, createdAt, s.UpdatedAt()), !found, nil
}

type visitRepo memTx

func (r *visitRepo) Create(_ context.Context, _ sqlc.DBTX, v *visit.Visit) (uuid.UUID, error) {
	if r.store.FailVisitCreate != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create visit", r.store.FailVisitCreate)
	}
	r.st.visits = append(r.st.visits, VisitRecord{
		ID:           v.ID(),
		CustomerID:   v.CustomerID(),
		SalonID:      v.SalonID(),
		BarberID:     v.BarberID(),
		ServiceType:  v.ServiceType().String(),
		AmountCents:  v.Amount().Cents(),
		PointsEarned: v.PointsEarned(),
		VisitDate:    v.VisitDate(),
	})
	return v.ID(), nil
}

type cardRepo memTx

func (r *cardRepo) Find(_ context.Context, _ sqlc.DBTX, customerID, salonID uuid.UUID) (*loyalty.Card, error) {
	if r.store.FailCardFind != nil {
		return nil, infra.WrapRepoErr("failed to find loyalty card", r.store.FailCardFind)
	}
	c, ok := r.st.cards[cardKey{customerID, salonID}]
	if !ok {
		return nil, notFound("loyalty card not found")
	}
	return toCard(c), nil
}

func (r *cardRepo) InsertIfAbsent(_ context.Context, _ sqlc.DBTX, c *loyalty.Card) (*loyalty.Card, bool, error) {
	key := cardKey{c.CustomerID(), c.SalonID()}
	if r.store.RaceOnInsert {
		r.st.cards[key] = CardRecord{
			ID: uuid.New(), CustomerID: c.CustomerID(), SalonID: c.SalonID(),
			CreatedAt: c.CreatedAt(), UpdatedAt: c.UpdatedAt(),
		}
	}
	if _, ok := r.st.cards[key]; ok {
		return nil, false, nil
	}
	rec := CardRecord{
		ID: c.ID(), CustomerID: c.CustomerID(), SalonID: c.SalonID(),
		CreatedAt: c.CreatedAt(), UpdatedAt: c.UpdatedAt(),
	}
	r.st.cards[key] = rec
	return toCard(rec), true, nil
}

func (r *cardRepo) Accrue(_ context.Context, _ sqlc.DBTX, customerID, salonID uuid.UUID, points int32, now time.Time) (*loyalty.Card, bool, error) {
	if r.store.FailAccrue != nil {
		return nil, false, infra.WrapRepoErr("failed to accrue loyalty card", r.store.FailAccrue)
	}
	key := cardKey{customerID, salonID}
	rec, found := r.st.cards[key]
	if !found {
		rec = CardRecord{ID: uuid.New(), CustomerID: customerID, SalonID: salonID, CreatedAt: now}
	}
	rec.TotalVisits++
	rec.TotalPoints += int64(points)
	rec.UpdatedAt = now
	r.st.cards[key] = rec
	return toCard(rec), !found, nil
}

func toCard(c CardRecord) *loyalty.Card {
	return loyalty.ReconstructCard(c.ID, c.CustomerID, c.SalonID, c.TotalVisits, c.TotalPoints, c.RewardsRedeemed, c.CreatedAt, c.UpdatedAt)
}
