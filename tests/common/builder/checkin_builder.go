//go:build unit || e2e

package builder

import (
	"encoding/json"

	reqdto "salon-loyalty/internal/handler/dto/request"
	"salon-loyalty/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckinBuilder struct {
	QRPayload   string
	ServiceType string
	Amount      string
	BarberID    *uuid.UUID
}

func NewCheckinBuilder(qrPayload string) *CheckinBuilder {
	return &CheckinBuilder{
		QRPayload:   qrPayload,
		ServiceType: "Haircut",
		Amount:      "25.00",
	}
}

func (c *CheckinBuilder) With(mutate func(*CheckinBuilder)) *CheckinBuilder {
	mutate(c)
	return c
}

func (c *CheckinBuilder) WithAmount(amount string) *CheckinBuilder {
	c.Amount = amount
	return c
}

func (c *CheckinBuilder) WithBarber(id uuid.UUID) *CheckinBuilder {
	c.BarberID = &id
	return c
}

func (c *CheckinBuilder) BuildInput() commands.CheckinInput {
	return commands.CheckinInput{
		QRPayload:   c.QRPayload,
		ServiceType: c.ServiceType,
		Amount:      c.Amount,
		BarberID:    c.BarberID,
	}
}

func (c *CheckinBuilder) BuildDTO() reqdto.CheckinRequest {
	return reqdto.CheckinRequest{
		QRPayload:   c.QRPayload,
		ServiceType: c.ServiceType,
		Amount:      json.Number(c.Amount),
		BarberID:    c.BarberID,
	}
}
