//go:build unit || e2e

package builder

import (
	"time"

	"salon-loyalty/internal/domain/profile"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
	"salon-loyalty/internal/pkg/pgconv"
	"salon-loyalty/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProfileBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     *string
	Phone        *string
	Role         string
	CreatedAt    time.Time
}

func NewProfileBuilder() *ProfileBuilder {
	name := "Alex Customer"
	return &ProfileBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		FullName:     &name,
		Role:         profile.RoleCustomer.String(),
		CreatedAt:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (p *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(p)
	return p
}

func (p *ProfileBuilder) WithRole(role profile.Role) *ProfileBuilder {
	p.Role = role.String()
	return p
}

func (p *ProfileBuilder) WithEmail(email string) *ProfileBuilder {
	p.Email = email
	return p
}

// Build methods
func (p *ProfileBuilder) BuildDomain() (*profile.Profile, error) {
	email, err := profile.NewEmail(p.Email)
	if err != nil {
		return nil, err
	}
	role, err := profile.NewRole(p.Role)
	if err != nil {
		return nil, err
	}
	return profile.NewProfile(email, p.PasswordHash, p.FullName, p.Phone, role, p.CreatedAt)
}

func (p *ProfileBuilder) BuildInfra() sqlc.Profiles {
	return sqlc.Profiles{
		ID:           p.ID,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		FullName:     pgconv.StringPtrToPgtype(p.FullName),
		Phone:        pgconv.StringPtrToPgtype(p.Phone),
		Role:         p.Role,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.CreatedAt,
	}
}

func (p *ProfileBuilder) BuildFindByIDRow() sqlc.FindProfileByIDRow {
	return sqlc.FindProfileByIDRow{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  pgconv.StringPtrToPgtype(p.FullName),
		Phone:     pgconv.StringPtrToPgtype(p.Phone),
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.CreatedAt,
	}
}

func (p *ProfileBuilder) BuildReadModel() *queries.ProfileView {
	return &queries.ProfileView{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Phone:     p.Phone,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
	}
}
