package queries

import (
	"context"

	"github.com/google/uuid"
)

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, categoryID *uuid.UUID, limit, offset int32) ([]*ProductListItem, error)
}

type ProductQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, categoryID *uuid.UUID, limit, offset int32) ([]*ProductListItem, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *productQueriesImpl) List(ctx context.Context, categoryID *uuid.UUID, limit, offset int32) ([]*ProductListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return q.store.List(ctx, categoryID, limit, offset)
}
