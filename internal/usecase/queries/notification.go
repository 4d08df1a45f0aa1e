package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type NotificationReadStore interface {
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*NotificationView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*NotificationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*NotificationView
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

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return q.store.CountUnread(ctx, userID)
}
