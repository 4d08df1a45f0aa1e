//go:build unit

package user_test

import (
	"testing"

	"gocery/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("shopper@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, "hashed-password", user.RoleCustomer)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "shopper@example.com", u.Email().Value())
	assert.Equal(t, user.RoleCustomer, u.Role())
	assert.True(t, u.IsActive())
	assert.Nil(t, u.LastLogin())
}

func TestNewEmail(t *testing.T) {
	valid := []string{"a@b.co", "shopper@example.com", "first.last+tag@sub.example.org"}
	for _, v := range valid {
		t.Run("accepts "+v, func(t *testing.T) {
			e, err := user.NewEmail(v)
			require.NoError(t, err)
			assert.Equal(t, v, e.Value())
		})
	}

	invalid := []string{"", "plain", "@example.com", "user@", "user@host", "user @example.com"}
	for _, v := range invalid {
		t.Run("rejects "+v, func(t *testing.T) {
			_, err := user.NewEmail(v)
			assert.ErrorIs(t, err, user.ErrInvalidEmail)
		})
	}

	t.Run("trims whitespace", func(t *testing.T) {
		e, err := user.NewEmail("  shopper@example.com  ")
		require.NoError(t, err)
		assert.Equal(t, "shopper@example.com", e.Value())
	})
}

func TestNewPassword(t *testing.T) {
	t.Run("accepts 8 characters", func(t *testing.T) {
		_, err := user.NewPassword("12345678")
		assert.NoError(t, err)
	})

	t.Run("rejects 7 characters", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestRole(t *testing.T) {
	assert.True(t, user.RoleCustomer.IsValid())
	assert.True(t, user.RoleAdmin.IsValid())
	assert.False(t, user.Role("manager").IsValid())
}
