package repository

import (
	"context"

	"gocery/internal/infra"
	"gocery/internal/infra/clientstate"
	"gocery/internal/infra/db"
)

type ClientStateRepository struct{}

func NewClientStateRepository() *ClientStateRepository {
	return &ClientStateRepository{}
}

const upsertClientStateSQL = `
INSERT INTO client_states (owner_id, scope, payload)
VALUES ($1, $2, $3)
ON CONFLICT (owner_id, scope) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
`

func (r *ClientStateRepository) Upsert(ctx context.Context, tx db.DBTX, ownerID string, scope clientstate.Scope, payload []byte) error {
	if _, err := tx.Exec(ctx, upsertClientStateSQL, ownerID, string(scope), payload); err != nil {
		return infra.WrapRepoErr("failed to upsert client state", err)
	}
	return nil
}

const deleteClientStateSQL = `
DELETE FROM client_states WHERE owner_id = $1 AND scope = $2
`

// Delete removes the stored document. Deleting absent state is not an
// error; the empty state is the default.
func (r *ClientStateRepository) Delete(ctx context.Context, tx db.DBTX, ownerID string, scope clientstate.Scope) error {
	if _, err := tx.Exec(ctx, deleteClientStateSQL, ownerID, string(scope)); err != nil {
		return infra.WrapRepoErr("failed to delete client state", err)
	}
	return nil
}
