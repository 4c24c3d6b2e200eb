package profile

import (
	"errors"
	"regexp"
	"strings"

	"salon-loyalty/internal/pkg/patch"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrFullNameTooLong = errors.New("full name must be at most 120 characters")
	ErrPhoneTooLong    = errors.New("phone must be at most 32 characters")
)

const (
	MaxFullNameLength = 120
	MaxPhoneLength    = 32
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail lowercases the address so lookups are case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

func normalizeOptional(s *string, maxLen int, tooLong error) (*string, error) {
	v := patch.TrimmedOrNil(s)
	if v != nil && len([]rune(*v)) > maxLen {
		return nil, tooLong
	}
	return v, nil
}
