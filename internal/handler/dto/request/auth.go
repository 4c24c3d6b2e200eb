package request

import (
	"salon-loyalty/internal/domain/auth"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8,max=72"`
	FullName *string `json:"full_name" binding:"omitempty,max=120"`
	Phone    *string `json:"phone" binding:"omitempty,max=32"`
	Role     string  `json:"role" binding:"required,oneof=salon_owner barber customer"`
}

func (r *RegisterRequest) ToDomain() (auth.Registration, error) {
	return auth.NewRegistration(r.Email, r.Password, r.FullName, r.Phone, r.Role)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
