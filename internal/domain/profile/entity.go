package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the identity behind every session. Role never changes after creation.
type Profile struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	fullName     *string
	phone        *string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

func NewProfile(email Email, passwordHash string, fullName, phone *string, role Role, now time.Time) (*Profile, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	name, err := normalizeOptional(fullName, MaxFullNameLength, ErrFullNameTooLong)
	if err != nil {
		return nil, err
	}
	ph, err := normalizeOptional(phone, MaxPhoneLength, ErrPhoneTooLong)
	if err != nil {
		return nil, err
	}

	return &Profile{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		fullName:     name,
		phone:        ph,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (p *Profile) ID() uuid.UUID        { return p.id }
func (p *Profile) Email() Email         { return p.email }
func (p *Profile) PasswordHash() string { return p.passwordHash }
func (p *Profile) FullName() *string    { return p.fullName }
func (p *Profile) Phone() *string       { return p.phone }
func (p *Profile) Role() Role           { return p.role }
func (p *Profile) CreatedAt() time.Time { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }
