package commands

import (
	"context"

	"gocery/internal/domain/user"
	"gocery/internal/infra"
	"gocery/internal/pkg/errs"
	"gocery/internal/pkg/jwt"
	"gocery/internal/pkg/password"
	"gocery/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserInactive       = errs.New("user account is deactivated")
	ErrEmailTaken         = errs.New("email is already registered")
)

// TokenValidator is what the auth middleware needs from the token layer.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, email, rawPassword string) (uuid.UUID, error)
	Login(ctx context.Context, email, rawPassword string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, tokens *jwt.Service) AuthCommands {
	return &authCommandsImpl{uow: uow, tokens: tokens}
}

func (c *authCommandsImpl) Register(ctx context.Context, email, rawPassword string) (uuid.UUID, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return uuid.Nil, err
	}
	pw, err := user.NewPassword(rawPassword)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(addr, hash, user.RoleCustomer)

	var userID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Users().Create(ctx, tx.DB(), u)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailTaken)
			}
			return err
		}
		userID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*TokenPair, error) {
	cred, err := c.uow.CommandReads().UserByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}
	if !cred.IsActive {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(cred.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(cred.Role)
	if err != nil {
		return nil, err
	}

	pair, err := c.issueTokens(cred.ID, role)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), cred.ID)
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

func (c *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := c.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, err
	}
	return c.issueTokens(claims.UserID, role)
}

func (c *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	access, err := c.tokens.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}
	refresh, err := c.tokens.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate refresh token")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
