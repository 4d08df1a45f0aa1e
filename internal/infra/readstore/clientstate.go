package readstore

import (
	"context"

	"gocery/internal/infra"
	"gocery/internal/infra/clientstate"
	"gocery/internal/infra/db"
	"gocery/internal/pkg/pgconv"
)

type ClientStateReadStore struct {
	db db.DBTX
}

func NewClientStateReadStore(dbtx db.DBTX) *ClientStateReadStore {
	return &ClientStateReadStore{db: dbtx}
}

const findClientStateSQL = `
SELECT payload FROM client_states WHERE owner_id = $1 AND scope = $2
`

// FindPayload returns the stored envelope bytes, or nil when the owner has
// no saved state for the scope.
func (s *ClientStateReadStore) FindPayload(ctx context.Context, ownerID string, scope clientstate.Scope) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(ctx, findClientStateSQL, ownerID, string(scope)).Scan(&payload)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find client state", err)
	}
	return payload, nil
}
