//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gocery/internal/domain/user"
	"gocery/internal/pkg/jwt"
	"gocery/internal/pkg/password"
	"gocery/internal/usecase/commands"
	"gocery/internal/usecase/shared"
	"gocery/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthCommands(uow *fakes.UnitOfWork) commands.AuthCommands {
	svc := jwt.NewService("test-secret", 15*time.Minute, 7*24*time.Hour)
	return commands.NewAuthCommands(uow, svc)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a customer with a hashed password", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		cmds := newAuthCommands(uow)

		id, err := cmds.Register(ctx, "shopper@example.com", "password123")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		cred := uow.State.Users["shopper@example.com"]
		assert.Equal(t, user.RoleCustomer.String(), cred.Role)
		assert.True(t, cred.IsActive)
		assert.NotEqual(t, "password123", cred.PasswordHash)
		assert.NoError(t, password.ComparePassword(cred.PasswordHash, "password123"))
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		cmds := newAuthCommands(uow)

		_, err := cmds.Register(ctx, "shopper@example.com", "password123")
		require.NoError(t, err)

		_, err = cmds.Register(ctx, "shopper@example.com", "different-password")
		assert.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		cmds := newAuthCommands(uow)

		_, err := cmds.Register(ctx, "not-an-email", "password123")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)

		_, err = cmds.Register(ctx, "shopper@example.com", "short")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	seedUser := func(uow *fakes.UnitOfWork, email, rawPassword string, active bool) shared.UserCredential {
		hash, err := password.HashPassword(rawPassword)
		if err != nil {
			panic(err)
		}
		cred := shared.UserCredential{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: hash,
			Role:         user.RoleCustomer.String(),
			IsActive:     active,
		}
		uow.State.Users[email] = cred
		return cred
	}

	t.Run("valid credentials yield a token pair", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		cred := seedUser(uow, "shopper@example.com", "password123", true)
		cmds := newAuthCommands(uow)

		pair, err := cmds.Login(ctx, "shopper@example.com", "password123")
		require.NoError(t, err)
		require.NotNil(t, pair)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)

		svc := jwt.NewService("test-secret", 15*time.Minute, 7*24*time.Hour)
		claims, err := svc.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, cred.ID, claims.UserID)
		assert.Equal(t, string(jwt.TokenTypeAccess), string(claims.TokenType))
	})

	t.Run("unknown email and wrong password fail the same way", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		seedUser(uow, "shopper@example.com", "password123", true)
		cmds := newAuthCommands(uow)

		_, err := cmds.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)

		_, err = cmds.Login(ctx, "shopper@example.com", "wrong-password")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("deactivated account is rejected", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		seedUser(uow, "shopper@example.com", "password123", false)
		cmds := newAuthCommands(uow)

		_, err := cmds.Login(ctx, "shopper@example.com", "password123")
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("refresh token yields a fresh pair", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		cmds := newAuthCommands(uow)
		svc := jwt.NewService("test-secret", 15*time.Minute, 7*24*time.Hour)

		refresh, err := svc.GenerateRefreshToken(uuid.New(), user.RoleCustomer)
		require.NoError(t, err)

		pair, err := cmds.Refresh(ctx, refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
	})

	t.Run("access token cannot be used to refresh", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		cmds := newAuthCommands(uow)
		svc := jwt.NewService("test-secret", 15*time.Minute, 7*24*time.Hour)

		access, err := svc.GenerateAccessToken(uuid.New(), user.RoleCustomer)
		require.NoError(t, err)

		_, err = cmds.Refresh(ctx, access)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		cmds := newAuthCommands(uow)

		_, err := cmds.Refresh(ctx, "not-a-token")
		assert.Error(t, err)
	})
}
