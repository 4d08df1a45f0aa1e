package readstore

import (
	"context"

	"gocery/internal/infra"
	"gocery/internal/infra/db"
	"gocery/internal/pkg/pgconv"
	"gocery/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const listReviewsByProductSQL = `
SELECT r.id, r.user_id, u.email, r.product_id, r.rating, r.comment, r.created_at, r.updated_at
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.product_id = $1
ORDER BY r.created_at DESC
LIMIT $2 OFFSET $3
`

func (s *ReviewReadStore) FindByProductID(ctx context.Context, productID uuid.UUID, limit, offset int32) ([]*queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, listReviewsByProductSQL, productID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	items := []*queries.ReviewView{}
	for rows.Next() {
		var v queries.ReviewView
		if err := rows.Scan(&v.ID, &v.UserID, &v.UserEmail, &v.ProductID,
			&v.Rating, &v.Comment, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return items, nil
}

const findReviewByIDSQL = `
SELECT r.id, r.user_id, u.email, r.product_id, r.rating, r.comment, r.created_at, r.updated_at
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.id = $1
`

func (s *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	var v queries.ReviewView
	err := s.db.QueryRow(ctx, findReviewByIDSQL, id).Scan(
		&v.ID, &v.UserID, &v.UserEmail, &v.ProductID, &v.Rating, &v.Comment, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review by ID", err)
	}
	return &v, nil
}
