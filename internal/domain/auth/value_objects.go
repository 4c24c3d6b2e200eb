package auth

import (
	"errors"

	"salon-loyalty/internal/domain/profile"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Credentials struct {
	email    profile.Email
	password profile.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := profile.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := profile.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() profile.Email {
	return c.email
}

func (c Credentials) Password() profile.Password {
	return c.password
}

// Registration carries everything needed to create a profile.
type Registration struct {
	Credentials
	FullName *string
	Phone    *string
	Role     profile.Role
}

func NewRegistration(emailStr, passwordStr string, fullName, phone *string, roleStr string) (Registration, error) {
	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}
	role, err := profile.NewRole(roleStr)
	if err != nil {
		return Registration{}, err
	}
	return Registration{
		Credentials: creds,
		FullName:    fullName,
		Phone:       phone,
		Role:        role,
	}, nil
}
