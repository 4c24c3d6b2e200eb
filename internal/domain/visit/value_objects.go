package visit

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

const (
	MaxServiceTypeLength = 120
	// NUMERIC(10,2)
	MaxAmountCents = 99_999_999_99
)

var (
	ErrEmptyServiceType   = errors.New("service type is required")
	ErrServiceTypeTooLong = errors.New("service type is too long")
	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrInvalidAmount      = errors.New("amount must be a decimal with at most two fractional digits")
	ErrAmountTooLarge     = errors.New("amount is too large")
)

type ServiceType struct {
	value string
}

func NewServiceType(s string) (ServiceType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ServiceType{}, ErrEmptyServiceType
	}
	if len([]rune(s)) > MaxServiceTypeLength {
		return ServiceType{}, ErrServiceTypeTooLong
	}
	return ServiceType{value: s}, nil
}

func (s ServiceType) String() string { return s.value }

// Amount is a non-negative money value held in cents.
type Amount struct {
	cents int64
}

// amountSyntax is the JSON number grammar with a bounded exponent.
var amountSyntax = regexp.MustCompile(`^[+-]?(\d+|\d*\.\d+)([eE][+-]?\d{1,3})?$`)

var (
	hundred     = big.NewRat(100, 1)
	maxCentsRat = new(big.Rat).SetInt64(MaxAmountCents)
)

// ParseAmount accepts decimal text in any JSON number form, such as "25",
// "19.99", "0.5" or "2.5e1". The value must be a whole number of cents.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if !amountSyntax.MatchString(s) {
		return Amount{}, ErrInvalidAmount
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Amount{}, ErrInvalidAmount
	}
	if r.Sign() < 0 {
		return Amount{}, ErrNegativeAmount
	}

	cents := r.Mul(r, hundred)
	if cents.Cmp(maxCentsRat) > 0 {
		return Amount{}, ErrAmountTooLarge
	}
	if !cents.IsInt() {
		return Amount{}, ErrInvalidAmount
	}
	return NewAmountFromCents(cents.Num().Int64())
}

func NewAmountFromCents(cents int64) (Amount, error) {
	if cents < 0 {
		return Amount{}, ErrNegativeAmount
	}
	if cents > MaxAmountCents {
		return Amount{}, ErrAmountTooLarge
	}
	return Amount{cents: cents}, nil
}

func (a Amount) Cents() int64 { return a.cents }

// Points is the whole-currency part of the amount: 19.99 earns 19, 0.50 earns 0.
func (a Amount) Points() int32 {
	return int32(a.cents / 100)
}

func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", a.cents/100, a.cents%100)
}
