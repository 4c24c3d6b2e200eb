package commands

import (
	"salon-loyalty/internal/pkg/errs"
)

// ErrValidation marks input that failed domain validation. Nothing is written
// when a command returns it.
var ErrValidation = errs.New("validation failed")

func validation(err error) error {
	return errs.Mark(err, ErrValidation)
}
