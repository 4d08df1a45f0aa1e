package repository

import (
	"context"
	"encoding/json"

	"gocery/internal/domain/order"
	"gocery/internal/infra"
	"gocery/internal/infra/db"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const insertOrderSQL = `
INSERT INTO orders (id, user_id, shipping_address, phone, lines, subtotal_cents, total_cents, coupon_id, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error) {
	lines, err := json.Marshal(o.Lines())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to marshal order lines", err)
	}

	_, err = tx.Exec(ctx, insertOrderSQL,
		o.ID(), o.UserID(), o.ShippingAddress().String(), o.Phone().String(),
		lines, o.SubtotalCents(), o.TotalCents(), o.CouponID(), o.Status().String())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert order", err)
	}
	return o.ID(), nil
}

const updateOrderStatusSQL = `
UPDATE orders SET status = $2, updated_at = now() WHERE id = $1
`

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx db.DBTX, orderID uuid.UUID, status order.Status) error {
	tag, err := tx.Exec(ctx, updateOrderStatusSQL, orderID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
