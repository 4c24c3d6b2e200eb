package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"salon-loyalty/internal/domain/loyalty"
	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/domain/qrcode"
	"salon-loyalty/internal/domain/visit"
	"salon-loyalty/internal/infra"
	"salon-loyalty/internal/pkg/clock"
	"salon-loyalty/internal/pkg/errs"
	"salon-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUnknownSalon       = errs.New("invalid or unknown QR code")
	ErrUnknownBarber      = errs.New("barber not found")
	ErrCheckinWriteFailed = errs.New("failed to record visit")
)

type CheckinInput struct {
	QRPayload   string
	ServiceType string
	Amount      string
	BarberID    *uuid.UUID
}

type CheckinResult struct {
	VisitID      uuid.UUID
	Salon        shared.SalonSnapshot
	ServiceType  string
	AmountCents  int64
	PointsEarned int32
	VisitDate    time.Time
	Card         *loyalty.Card
	CardCreated  bool
	Progress     loyalty.Progress
}

type JoinResult struct {
	Salon    shared.SalonSnapshot
	Card     *loyalty.Card
	Created  bool
	Progress loyalty.Progress
}

type CheckinCommands interface {
	CheckIn(ctx context.Context, customerID uuid.UUID, in CheckinInput) (*CheckinResult, error)
	JoinSalon(ctx context.Context, customerID, salonID uuid.UUID) (*JoinResult, error)
}

type checkinCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier shared.CheckinNotifier
}

func NewCheckinCommands(uow shared.UnitOfWork, clk clock.Clock, notifier shared.CheckinNotifier) CheckinCommands {
	return &checkinCommandsImpl{
		uow:      uow,
		clock:    clk,
		notifier: notifier,
	}
}

// CheckIn records a visit and accrues the customer's card at the salon behind
// the QR payload. Both writes share one transaction.
func (uc *checkinCommandsImpl) CheckIn(ctx context.Context, customerID uuid.UUID, in CheckinInput) (*CheckinResult, error) {
	serviceType, err := visit.NewServiceType(in.ServiceType)
	if err != nil {
		return nil, validation(err)
	}
	amount, err := visit.ParseAmount(in.Amount)
	if err != nil {
		return nil, validation(err)
	}

	ownerRef, err := qrcode.Decode(in.QRPayload)
	if err != nil {
		return nil, err
	}
	ownerID, err := uuid.Parse(ownerRef)
	if err != nil {
		return nil, ErrUnknownSalon
	}

	var (
		result  *CheckinResult
		writing bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		writing = false

		s, err := tx.Reads().SalonByOwner(ctx, ownerID)
		if err != nil {
			if infra.IsNotFound(err) {
				return ErrUnknownSalon
			}
			return err
		}

		if in.BarberID != nil {
			if err := checkBarber(ctx, tx, *in.BarberID); err != nil {
				return err
			}
		}

		now := uc.clock.Now()
		v := visit.NewVisit(customerID, s.ID, in.BarberID, serviceType, amount, now)

		writing = true
		visitID, err := tx.Visits().Create(ctx, tx.DB(), v)
		if err != nil {
			return err
		}
		card, created, err := tx.LoyaltyCards().Accrue(ctx, tx.DB(), customerID, s.ID, v.PointsEarned(), now)
		if err != nil {
			return err
		}

		result = &CheckinResult{
			VisitID:      visitID,
			Salon:        *s,
			ServiceType:  serviceType.String(),
			AmountCents:  amount.Cents(),
			PointsEarned: v.PointsEarned(),
			VisitDate:    v.VisitDate(),
			Card:         card,
			CardCreated:  created,
			Progress:     card.Progress(s.LoyaltyThreshold),
		}
		return nil
	})
	if err != nil {
		if writing && !errors.Is(err, context.Canceled) {
			slog.Error("check-in rolled back",
				"customer_id", customerID,
				"owner_id", ownerID,
				"error", err.Error())
			return nil, errs.Mark(err, ErrCheckinWriteFailed)
		}
		return nil, err
	}

	uc.notifier.PublishCheckin(ctx, shared.CheckinEvent{
		VisitID:      result.VisitID,
		SalonID:      result.Salon.ID,
		SalonName:    result.Salon.Name,
		OwnerID:      result.Salon.OwnerID,
		CustomerID:   customerID,
		ServiceType:  result.ServiceType,
		Amount:       amount.String(),
		PointsEarned: result.PointsEarned,
		CardID:       result.Card.ID(),
		TotalVisits:  result.Card.TotalVisits(),
		TotalPoints:  result.Card.TotalPoints(),
		Threshold:    result.Salon.LoyaltyThreshold,
		RewardReady:  result.Progress.RewardReady,
		VisitDate:    result.VisitDate,
	})

	return result, nil
}

// JoinSalon gives the customer an empty card at the salon if they have none.
func (uc *checkinCommandsImpl) JoinSalon(ctx context.Context, customerID, salonID uuid.UUID) (*JoinResult, error) {
	var result *JoinResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Reads().SalonByID(ctx, salonID)
		if err != nil {
			if infra.IsNotFound(err) {
				return ErrUnknownSalon
			}
			return err
		}

		card, created, err := ResolveOrCreateCard(ctx, tx, customerID, salonID, uc.clock.Now())
		if err != nil {
			return err
		}

		result = &JoinResult{
			Salon:    *s,
			Card:     card,
			Created:  created,
			Progress: card.Progress(s.LoyaltyThreshold),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ResolveOrCreateCard returns the pair's card, inserting an empty one when
// absent. A concurrent insert that wins the race is read back. Lookup errors
// other than not-found are returned without attempting creation.
func ResolveOrCreateCard(ctx context.Context, tx shared.Tx, customerID, salonID uuid.UUID, now time.Time) (*loyalty.Card, bool, error) {
	cards := tx.LoyaltyCards()

	card, err := cards.Find(ctx, tx.DB(), customerID, salonID)
	if err == nil {
		return card, false, nil
	}
	if !infra.IsNotFound(err) {
		return nil, false, err
	}

	card, inserted, err := cards.InsertIfAbsent(ctx, tx.DB(), loyalty.NewCard(customerID, salonID, now))
	if err != nil {
		return nil, false, err
	}
	if inserted {
		return card, true, nil
	}

	card, err = cards.Find(ctx, tx.DB(), customerID, salonID)
	if err != nil {
		return nil, false, err
	}
	return card, false, nil
}

func checkBarber(ctx context.Context, tx shared.Tx, barberID uuid.UUID) error {
	p, err := tx.Reads().ProfileByID(ctx, barberID)
	if err != nil {
		if infra.IsNotFound(err) {
			return validation(ErrUnknownBarber)
		}
		return err
	}
	if p.Role != profile.RoleBarber.String() {
		return validation(ErrUnknownBarber)
	}
	return nil
}
