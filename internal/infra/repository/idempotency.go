package repository

import (
	"context"
	"time"

	"gocery/internal/infra"
	"gocery/internal/infra/db"
	"gocery/internal/pkg/pgconv"
	"gocery/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

const insertIdempotencySQL = `
INSERT INTO idempotency_keys (key, user_id, endpoint, status, request_hash, expires_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	_, err := tx.Exec(ctx, insertIdempotencySQL,
		key, userID, endpoint, shared.IdempotencyStatusProcessing, requestHash, expiresAt)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("idempotency key already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return nil
}

const completeIdempotencySQL = `
UPDATE idempotency_keys SET status = $3, result_order_id = $4
WHERE key = $1 AND user_id = $2
`

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, resultOrderID uuid.UUID) error {
	tag, err := tx.Exec(ctx, completeIdempotencySQL, key, userID, shared.IdempotencyStatusCompleted, resultOrderID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return nil
}
