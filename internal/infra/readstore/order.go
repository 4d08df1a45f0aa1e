package readstore

import (
	"context"
	"encoding/json"
	"time"

	"gocery/internal/domain/cart"
	"gocery/internal/infra"
	"gocery/internal/infra/db"
	"gocery/internal/pkg/pgconv"
	"gocery/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const findOrderByIDSQL = `
SELECT o.id, o.user_id, o.shipping_address, o.phone, o.lines, o.subtotal_cents,
       o.total_cents, o.coupon_id, c.code, o.status, o.created_at, o.updated_at
FROM orders o
LEFT JOIN coupons c ON c.id = o.coupon_id
WHERE o.id = $1
`

func (s *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var v queries.OrderView
	var rawLines []byte
	err := s.db.QueryRow(ctx, findOrderByIDSQL, id).Scan(
		&v.ID, &v.UserID, &v.ShippingAddress, &v.Phone, &rawLines, &v.SubtotalCents,
		&v.TotalCents, &v.CouponID, &v.CouponCode, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	lines, err := unmarshalOrderLines(rawLines)
	if err != nil {
		return nil, err
	}
	v.Lines = lines
	return &v, nil
}

const listOrdersFirstPageSQL = `
SELECT id, lines, total_cents, status, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`

const listOrdersKeysetSQL = `
SELECT id, lines, total_cents, status, created_at
FROM orders
WHERE user_id = $1 AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4
`

func (s *OrderReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := s.db.Query(ctx, listOrdersFirstPageSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders first page", err)
	}
	defer rows.Close()
	return collectOrderItems(rows)
}

func (s *OrderReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := s.db.Query(ctx, listOrdersKeysetSQL, userID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders keyset", err)
	}
	defer rows.Close()
	return collectOrderItems(rows)
}

func collectOrderItems(rows pgx.Rows) ([]*queries.OrderListItem, error) {
	items := []*queries.OrderListItem{}
	for rows.Next() {
		var it queries.OrderListItem
		var rawLines []byte
		if err := rows.Scan(&it.ID, &rawLines, &it.TotalCents, &it.Status, &it.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}

		var lines []cart.Line
		if err := json.Unmarshal(rawLines, &lines); err != nil {
			return nil, infra.WrapRepoErr("failed to unmarshal order lines", err)
		}
		for _, l := range lines {
			it.TotalItems += l.Quantity
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}
	return items, nil
}

func unmarshalOrderLines(raw []byte) ([]queries.OrderLineView, error) {
	var lines []cart.Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal order lines", err)
	}

	views := make([]queries.OrderLineView, len(lines))
	for i, l := range lines {
		views[i] = queries.OrderLineView{
			ProductID:       l.ProductID,
			Name:            l.Name,
			UnitPriceCents:  l.UnitPriceCents,
			DiscountPercent: l.DiscountPercent,
			Quantity:        l.Quantity,
			LineTotalCents:  l.LineTotalCents(),
		}
	}
	return views, nil
}
