package converter

import (
	"salon-loyalty/internal/domain/profile"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
	"salon-loyalty/internal/pkg/pgconv"
)

func ProfileToCreateParams(p *profile.Profile) sqlc.CreateProfileParams {
	return sqlc.CreateProfileParams{
		ID:           p.ID(),
		Email:        p.Email().Value(),
		PasswordHash: p.PasswordHash(),
		FullName:     pgconv.StringPtrToPgtype(p.FullName()),
		Phone:        pgconv.StringPtrToPgtype(p.Phone()),
		Role:         p.Role().String(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}
