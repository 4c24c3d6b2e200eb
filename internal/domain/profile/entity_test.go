//go:build unit

package profile_test

import (
	"strings"
	"testing"

	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewProfileBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, profile.RoleCustomer, actual.Role())
		assert.Equal(t, "test@example.com", actual.Email().Value())
	})

	t.Run("email is normalized", func(t *testing.T) {
		actual, err := builder.NewProfileBuilder().WithEmail("  Owner@Example.COM ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "owner@example.com", actual.Email().Value())
	})

	t.Run("blank optional fields become nil", func(t *testing.T) {
		actual, err := builder.NewProfileBuilder().With(func(b *builder.ProfileBuilder) {
			blank := "  "
			b.FullName = &blank
			b.Phone = nil
		}).BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, actual.FullName())
		assert.Nil(t, actual.Phone())
	})

	t.Run("validation", func(t *testing.T) {
		long := strings.Repeat("x", profile.MaxFullNameLength+1)
		cases := []struct {
			name   string
			mutate func(*builder.ProfileBuilder)
			errIs  error
		}{
			{name: "invalid email", mutate: func(b *builder.ProfileBuilder) { b.Email = "not-an-email" }, errIs: profile.ErrInvalidEmail},
			{name: "unknown role", mutate: func(b *builder.ProfileBuilder) { b.Role = "admin" }, errIs: profile.ErrInvalidRole},
			{name: "full name too long", mutate: func(b *builder.ProfileBuilder) { b.FullName = &long }, errIs: profile.ErrFullNameTooLong},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := builder.NewProfileBuilder().With(c.mutate).BuildDomain()
				assert.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestNewRole(t *testing.T) {
	for _, r := range []string{"salon_owner", "barber", "customer"} {
		role, err := profile.NewRole(r)
		require.NoError(t, err)
		assert.Equal(t, r, role.String())
	}

	_, err := profile.NewRole("Customer")
	assert.ErrorIs(t, err, profile.ErrInvalidRole)
}
