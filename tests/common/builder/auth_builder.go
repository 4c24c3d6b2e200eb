//go:build unit || e2e

package builder

import (
	reqdto "salon-loyalty/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	FullName *string
	Phone    *string
	Role     string
}

func NewAuthBuilder() *AuthBuilder {
	name := "Test User"
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
		FullName: &name,
		Role:     "customer",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
		FullName: a.FullName,
		Phone:    a.Phone,
		Role:     a.Role,
	}
}
