package commands

import (
	"context"

	"salon-loyalty/internal/domain/qrcode"
	"salon-loyalty/internal/domain/salon"
	"salon-loyalty/internal/pkg/clock"
	"salon-loyalty/internal/pkg/patch"
	"salon-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

type SaveSalonInput struct {
	Name              string
	Address           *string
	Phone             *string
	LoyaltyThreshold  *int32
	RewardDescription *string
}

type SaveSalonResult struct {
	Salon   *salon.Salon
	Created bool
}

type SalonCommands interface {
	SaveSalon(ctx context.Context, ownerID uuid.UUID, in SaveSalonInput) (*SaveSalonResult, error)
}

type salonCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	codec *qrcode.Codec
}

func NewSalonCommands(uow shared.UnitOfWork, clk clock.Clock, codec *qrcode.Codec) SalonCommands {
	return &salonCommandsImpl{
		uow:   uow,
		clock: clk,
		codec: codec,
	}
}

// SaveSalon creates the owner's salon or updates it in place. The QR payload is
// generated on creation only.
func (uc *salonCommandsImpl) SaveSalon(ctx context.Context, ownerID uuid.UUID, in SaveSalonInput) (*SaveSalonResult, error) {
	details, err := salon.NewDetails(
		in.Name,
		patch.Coalesce(in.Address, ""),
		patch.Coalesce(in.Phone, ""),
		patch.Coalesce(in.LoyaltyThreshold, salon.DefaultLoyaltyThreshold),
		patch.Coalesce(in.RewardDescription, salon.DefaultRewardDescription),
	)
	if err != nil {
		return nil, validation(err)
	}

	candidate, err := salon.NewSalon(ownerID, details, uc.codec.Encode(ownerID.String()), uc.clock.Now())
	if err != nil {
		return nil, validation(err)
	}

	var result *SaveSalonResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		saved, created, err := tx.Salons().UpsertByOwner(ctx, tx.DB(), candidate)
		if err != nil {
			return err
		}
		result = &SaveSalonResult{Salon: saved, Created: created}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
