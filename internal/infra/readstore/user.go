package readstore

import (
	"context"
	"strings"

	"gocery/internal/infra"
	"gocery/internal/infra/db"
	"gocery/internal/pkg/pgconv"
	"gocery/internal/usecase/queries"
	"gocery/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findUserByIDSQL = `
SELECT id, email, role, is_active FROM users WHERE id = $1
`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, findUserByIDSQL, id).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

const findCredentialByEmailSQL = `
SELECT id, email, password_hash, role, is_active FROM users WHERE email = $1
`

func (s *UserReadStore) FindCredentialByEmail(ctx context.Context, email string) (*shared.UserCredential, error) {
	email = strings.TrimSpace(email)

	var c shared.UserCredential
	err := s.db.QueryRow(ctx, findCredentialByEmailSQL, email).Scan(
		&c.ID, &c.Email, &c.PasswordHash, &c.Role, &c.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &c, nil
}
