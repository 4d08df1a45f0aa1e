package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	FindByProductID(ctx context.Context, productID uuid.UUID, limit, offset int32) ([]*ReviewView, error)
}

type ReviewQueries interface {
	ListByProduct(ctx context.Context, productID uuid.UUID, limit, offset int32) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ListByProduct(ctx context.Context, productID uuid.UUID, limit, offset int32) ([]*ReviewView, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return q.store.FindByProductID(ctx, productID, limit, offset)
}
