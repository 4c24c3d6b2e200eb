//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/handler/dto/request"
	resdto "salon-loyalty/internal/handler/dto/response"
	"salon-loyalty/internal/pkg/cookie"
	"salon-loyalty/tests/common/authtest"
	"salon-loyalty/tests/common/dbtest"
	"salon-loyalty/tests/common/httptest"
	"salon-loyalty/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	dbtest.CreateTestProfile(s.T(), s.DB, "owner@example.com", profile.RoleSalonOwner)
}

func (s *authSuite) TestRegister() {
	s.Run("creates a profile and signs in", func() {
		name := "Casey Customer"
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email:    "new@example.com",
			Password: "password123",
			FullName: &name,
			Role:     profile.RoleCustomer.String(),
		}, "")

		var res resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal("customer", res.User.Role)
		s.NotNil(httptest.ExtractCookie(w, cookie.AccessTokenCookieName))

		var hash string
		err := s.DB.QueryRow(s.T().Context(), "SELECT password_hash FROM profiles WHERE email = $1", "new@example.com").Scan(&hash)
		require.NoError(s.T(), err)
		s.NotEqual("password123", hash)
	})

	s.Run("rejects a taken email", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email:    "owner@example.com",
			Password: "password123",
			Role:     profile.RoleCustomer.String(),
		}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Email already registered")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "owner@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "owner@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "empty email", email: "", password: dbtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "owner@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(s.T(), tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res resdto.LoginResponse
				httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
				s.NotEmpty(res.AccessToken)
				s.NotEmpty(res.RefreshToken)
				s.Equal("salon_owner", res.User.Role)
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("issues a new pair from the refresh cookie", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "owner@example.com", Password: dbtest.DefaultPassword}, "")
		require.Equal(s.T(), http.StatusOK, w.Code)

		refresh := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
		require.NotNil(s.T(), refresh)

		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL, nil, []*http.Cookie{refresh}, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("rejects an access token", func() {
		token := s.jwtHelper.GenerateToken(s.T(), uuid.New(), profile.RoleCustomer)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: token}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid refresh token")
	})

	s.Run("rejects a token for a deleted profile", func() {
		token := s.jwtHelper.GenerateRefreshToken(s.T(), uuid.New(), profile.RoleCustomer)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: token}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid refresh token")
	})
}

func (s *authSuite) TestMe() {
	s.Run("returns the caller", func() {
		token := authtest.LoginUser(s.T(), s.Router, "owner@example.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var res resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		httptest.AssertHeaders(s.T(), w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		s.Equal("owner@example.com", res.Email)
	})

	s.Run("rejects an expired token", func() {
		token := s.jwtHelper.CreateExpiredToken(s.T(), uuid.New(), profile.RoleCustomer)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("logout clears the cookies", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "owner@example.com", Password: dbtest.DefaultPassword}, "")
		require.Equal(s.T(), http.StatusOK, w.Code)
		authtest.LogoutUser(s.T(), s.Router, httptest.ExtractCookies(w))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		s.Equal(http.StatusNoContent, w.Code)
		access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(s.T(), access)
		s.Empty(access.Value)
	})
}
