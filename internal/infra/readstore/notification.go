package readstore

import (
	"context"
	"time"

	"gocery/internal/infra"
	"gocery/internal/infra/db"
	"gocery/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

const listNotificationsFirstPageSQL = `
SELECT id, topic, message, is_read, created_at
FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`

const listNotificationsKeysetSQL = `
SELECT id, topic, message, is_read, created_at
FROM notifications
WHERE user_id = $1 AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4
`

func (s *NotificationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, listNotificationsFirstPageSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications first page", err)
	}
	defer rows.Close()
	return collectNotifications(rows)
}

func (s *NotificationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, listNotificationsKeysetSQL, userID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications keyset", err)
	}
	defer rows.Close()
	return collectNotifications(rows)
}

func collectNotifications(rows pgx.Rows) ([]*queries.NotificationView, error) {
	items := []*queries.NotificationView{}
	for rows.Next() {
		var n queries.NotificationView
		if err := rows.Scan(&n.ID, &n.Topic, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		items = append(items, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification rows", err)
	}
	return items, nil
}

const countUnreadSQL = `
SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false
`

func (s *NotificationReadStore) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, countUnreadSQL, userID).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return n, nil
}
