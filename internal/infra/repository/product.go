package repository

import (
	"context"

	"gocery/internal/domain/product"
	"gocery/internal/infra"
	"gocery/internal/infra/db"
	"gocery/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const insertProductSQL = `
INSERT INTO products (id, name, price_cents, discount_percent, stock, images, category_id, kind)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (r *ProductRepository) Create(ctx context.Context, tx db.DBTX, p *product.Product) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, insertProductSQL,
		p.ID(), p.Name(), p.PriceCents(), p.DiscountPercent(), p.Stock(), p.Images(), p.CategoryID(), p.Kind().String())
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("category does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert product", err)
	}
	return p.ID(), nil
}

const updateProductSQL = `
UPDATE products
SET name = $2, price_cents = $3, discount_percent = $4, stock = $5,
    images = $6, category_id = $7, kind = $8, updated_at = now()
WHERE id = $1
`

func (r *ProductRepository) Update(ctx context.Context, tx db.DBTX, p *product.Product) error {
	tag, err := tx.Exec(ctx, updateProductSQL,
		p.ID(), p.Name(), p.PriceCents(), p.DiscountPercent(), p.Stock(), p.Images(), p.CategoryID(), p.Kind().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

// The stock check and decrement are one statement so concurrent placements
// cannot both pass a read-then-write check.
const decrementStockSQL = `
UPDATE products SET stock = stock - $2, updated_at = now()
WHERE id = $1 AND stock >= $2
`

func (r *ProductRepository) DecrementStock(ctx context.Context, tx db.DBTX, productID uuid.UUID, quantity int32) (bool, error) {
	tag, err := tx.Exec(ctx, decrementStockSQL, productID, quantity)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement stock", err)
	}
	return tag.RowsAffected() > 0, nil
}

const recalcRatingStatsSQL = `
UPDATE products p
SET average_rating = COALESCE(s.avg_rating, 0),
    review_count   = COALESCE(s.cnt, 0),
    updated_at     = now()
FROM (
    SELECT AVG(rating)::float8 AS avg_rating, COUNT(*)::int AS cnt
    FROM reviews WHERE product_id = $1
) s
WHERE p.id = $1
`

func (r *ProductRepository) RecalcRatingStats(ctx context.Context, tx db.DBTX, productID uuid.UUID) error {
	if _, err := tx.Exec(ctx, recalcRatingStatsSQL, productID); err != nil {
		return infra.WrapRepoErr("failed to recalculate rating stats", err)
	}
	return nil
}
