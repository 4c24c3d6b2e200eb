package commands

import (
	"context"
	"log/slog"

	"salon-loyalty/internal/domain/auth"
	"salon-loyalty/internal/domain/profile"
	reqdto "salon-loyalty/internal/handler/dto/request"
	"salon-loyalty/internal/infra"
	"salon-loyalty/internal/pkg/clock"
	"salon-loyalty/internal/pkg/errs"
	"salon-loyalty/internal/pkg/jwt"
	"salon-loyalty/internal/pkg/password"
	"salon-loyalty/internal/usecase/queries"
	"salon-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	Role      profile.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.ProfileReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.ProfileReadStore, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error) {
	reg, err := req.ToDomain()
	if err != nil {
		return nil, validation(err)
	}

	hash, err := password.HashPassword(reg.Password().Value())
	if err != nil {
		return nil, validation(err)
	}

	p, err := profile.NewProfile(reg.Email(), hash, reg.FullName, reg.Phone, reg.Role, a.clock.Now())
	if err != nil {
		return nil, validation(err)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Profiles().Create(ctx, tx.DB(), p)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	slog.Info("profile registered", "user_id", p.ID(), "role", p.Role().String())

	pair, err := a.issueTokens(p.ID(), p.Role())
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: p.ID(), Role: p.Role(), TokenPair: pair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := profile.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.issueTokens(view.ID, role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: view.ID, Role: role, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := profile.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// The profile may have been removed since the token was issued.
	if _, err := a.readStore.FindByID(ctx, claims.UserID); err != nil {
		if infra.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role profile.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.ProfileView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsNotFound(err) {
			// Same error as a password mismatch so emails cannot be probed.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}
