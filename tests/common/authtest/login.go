//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/handler/dto/request"
	"salon-loyalty/internal/pkg/cookie"
	"salon-loyalty/tests/common/dbtest"
	"salon-loyalty/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// CreateAndLogin inserts a profile with dbtest.DefaultPassword and logs it in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string, role profile.Role) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestProfile(t, db, email, role)
	return id, LoginUser(t, router, email, dbtest.DefaultPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
