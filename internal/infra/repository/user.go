package repository

import (
	"context"

	"gocery/internal/domain/user"
	"gocery/internal/infra"
	"gocery/internal/infra/db"
	"gocery/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const insertUserSQL = `
INSERT INTO users (id, email, password_hash, role, is_active)
VALUES ($1, $2, $3, $4, $5)
`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, insertUserSQL,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsActive())
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert user", err)
	}
	return u.ID(), nil
}

const updateLastLoginSQL = `
UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1
`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, updateLastLoginSQL, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
