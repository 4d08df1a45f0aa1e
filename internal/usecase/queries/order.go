package queries

import (
	"context"
	"time"

	"gocery/internal/domain/user"
	"gocery/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrderAccessDenied = errs.New("order does not belong to the requesting user")

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*OrderListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OrderListItem, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*OrderView, error)
	// GetByIDSystem bypasses the ownership check for internal read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actorID && actorRole != user.RoleAdmin.String() {
		return nil, ErrOrderAccessDenied
	}
	return view, nil
}

func (q *orderQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*OrderListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
