//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/pkg/config"
	"salon-loyalty/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, access time.Duration) *jwt.Service {
	t.Helper()
	_, refresh, err := h.cfg.Durations()
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, access, refresh)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role profile.Role) string {
	t.Helper()
	access, _, err := h.cfg.Durations()
	require.NoError(t, err)
	token, err := h.service(t, access).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, role profile.Role) string {
	t.Helper()
	token, err := h.service(t, time.Minute).GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role profile.Role) string {
	t.Helper()
	token, err := h.service(t, time.Millisecond).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
