package salon

import (
	"errors"
	"strings"
)

const (
	DefaultLoyaltyThreshold  = 10
	DefaultRewardDescription = "Free haircut after 10 visits"

	MaxNameLength              = 120
	MaxAddressLength           = 255
	MaxPhoneLength             = 32
	MaxRewardDescriptionLength = 255
	MaxLoyaltyThreshold        = 1000
)

var (
	ErrEmptyName          = errors.New("salon name is required")
	ErrNameTooLong        = errors.New("salon name is too long")
	ErrAddressTooLong     = errors.New("salon address is too long")
	ErrPhoneTooLong       = errors.New("salon phone is too long")
	ErrInvalidThreshold   = errors.New("loyalty threshold must be between 1 and 1000")
	ErrEmptyReward        = errors.New("reward description is required")
	ErrRewardTooLong      = errors.New("reward description is too long")
	ErrEmptyQRPayload     = errors.New("qr payload is required")
)

type LoyaltyThreshold struct {
	value int32
}

func NewLoyaltyThreshold(v int32) (LoyaltyThreshold, error) {
	if v < 1 || v > MaxLoyaltyThreshold {
		return LoyaltyThreshold{}, ErrInvalidThreshold
	}
	return LoyaltyThreshold{value: v}, nil
}

func (t LoyaltyThreshold) Value() int32 { return t.value }

// Details is the owner-editable part of a salon.
type Details struct {
	Name              string
	Address           string
	Phone             string
	Threshold         LoyaltyThreshold
	RewardDescription string
}

func NewDetails(name, address, phone string, threshold int32, reward string) (Details, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	phone = strings.TrimSpace(phone)
	reward = strings.TrimSpace(reward)

	if name == "" {
		return Details{}, ErrEmptyName
	}
	if len([]rune(name)) > MaxNameLength {
		return Details{}, ErrNameTooLong
	}
	if len([]rune(address)) > MaxAddressLength {
		return Details{}, ErrAddressTooLong
	}
	if len([]rune(phone)) > MaxPhoneLength {
		return Details{}, ErrPhoneTooLong
	}
	if reward == "" {
		return Details{}, ErrEmptyReward
	}
	if len([]rune(reward)) > MaxRewardDescriptionLength {
		return Details{}, ErrRewardTooLong
	}
	th, err := NewLoyaltyThreshold(threshold)
	if err != nil {
		return Details{}, err
	}

	return Details{
		Name:              name,
		Address:           address,
		Phone:             phone,
		Threshold:         th,
		RewardDescription: reward,
	}, nil
}
