package repository

import (
	"context"

	"gocery/internal/domain/review"
	"gocery/internal/infra"
	"gocery/internal/infra/db"
	"gocery/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

const insertReviewSQL = `
INSERT INTO reviews (id, user_id, product_id, rating, comment)
VALUES ($1, $2, $3, $4, $5)
`

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, insertReviewSQL,
		rev.ID(), rev.UserID(), rev.ProductID(), rev.Rating().Value(), rev.Comment().String())
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("product or user does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert review", err)
	}
	return rev.ID(), nil
}

const updateReviewSQL = `
UPDATE reviews SET rating = $2, comment = $3, updated_at = now() WHERE id = $1
`

func (r *ReviewRepository) Update(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, rev *review.Review) error {
	tag, err := tx.Exec(ctx, updateReviewSQL, reviewID, rev.Rating().Value(), rev.Comment().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteReviewSQL = `
DELETE FROM reviews WHERE id = $1
`

func (r *ReviewRepository) Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteReviewSQL, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
