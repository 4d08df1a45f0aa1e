package readstore

import (
	"context"

	"gocery/internal/infra"
	"gocery/internal/infra/db"
	"gocery/internal/pkg/pgconv"
	"gocery/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadStore struct {
	db db.DBTX
}

func NewIdempotencyReadStore(dbtx db.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{db: dbtx}
}

const findIdempotencySQL = `
SELECT key, user_id, status, request_hash, result_order_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2
`

func (s *IdempotencyReadStore) Get(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	var rec shared.IdempotencyRecord
	err := s.db.QueryRow(ctx, findIdempotencySQL, key, userID).Scan(
		&rec.Key, &rec.UserID, &rec.Status, &rec.RequestHash, &rec.ResultOrderID, &rec.ExpiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find idempotency key", err)
	}
	return &rec, nil
}
