//go:build unit

package api_test

import (
	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var testUserID = uuid.MustParse("6f1c7a52-3d0b-4f55-9a5e-0c3b8f1d2e47")

// asUser stands in for RequireAuth in handler tests.
func asUser(role profile.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetUser(c, testUserID, role)
		c.Next()
	}
}
