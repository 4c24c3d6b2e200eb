package request

import (
	"encoding/json"

	"github.com/google/uuid"
)

type CheckinRequest struct {
	QRPayload   string      `json:"qr_payload" binding:"required"`
	ServiceType string      `json:"service_type"`
	Amount      json.Number `json:"amount" binding:"required"`
	BarberID    *uuid.UUID  `json:"barber_id"`
}

type ScanRequest struct {
	Payload string `json:"payload" binding:"required"`
}
