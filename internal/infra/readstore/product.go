package readstore

import (
	"context"

	"gocery/internal/infra"
	"gocery/internal/infra/db"
	"gocery/internal/pkg/pgconv"
	"gocery/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

const findProductByIDSQL = `
SELECT id, name, price_cents, discount_percent, stock, images, category_id, kind,
       average_rating, review_count, created_at, updated_at
FROM products
WHERE id = $1
`

func (s *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	var v queries.ProductView
	err := s.db.QueryRow(ctx, findProductByIDSQL, id).Scan(
		&v.ID, &v.Name, &v.PriceCents, &v.DiscountPercent, &v.Stock, &v.Images,
		&v.CategoryID, &v.Kind, &v.AverageRating, &v.ReviewCount, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	v.DiscountedPriceCents = discountedCents(v.PriceCents, v.DiscountPercent)
	return &v, nil
}

const listProductsSQL = `
SELECT id, name, price_cents, discount_percent, stock, images, category_id, kind
FROM products
WHERE ($1::uuid IS NULL OR category_id = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

func (s *ProductReadStore) List(ctx context.Context, categoryID *uuid.UUID, limit, offset int32) ([]*queries.ProductListItem, error) {
	rows, err := s.db.Query(ctx, listProductsSQL, categoryID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	items := []*queries.ProductListItem{}
	for rows.Next() {
		var it queries.ProductListItem
		var images []string
		if err := rows.Scan(&it.ID, &it.Name, &it.PriceCents, &it.DiscountPercent,
			&it.Stock, &images, &it.CategoryID, &it.Kind); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		if len(images) > 0 {
			it.ImageURL = images[0]
		}
		it.DiscountedPriceCents = discountedCents(it.PriceCents, it.DiscountPercent)
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return items, nil
}

func discountedCents(priceCents int64, discountPercent float64) int64 {
	v := int64(float64(priceCents) * (100.0 - discountPercent) / 100.0)
	if v < 0 {
		return 0
	}
	return v
}
