package repository

import (
	"context"

	"gocery/internal/infra"
	"gocery/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const insertNotificationSQL = `
INSERT INTO notifications (id, user_id, topic, message, payload)
VALUES ($1, $2, $3, $4, $5)
`

func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, topic, message string, payload []byte) error {
	if payload == nil {
		payload = []byte("{}")
	}
	if _, err := tx.Exec(ctx, insertNotificationSQL, uuid.New(), userID, topic, message, payload); err != nil {
		return infra.WrapRepoErr("failed to insert notification", err)
	}
	return nil
}
