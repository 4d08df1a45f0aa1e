package readstore

import (
	"context"
	"strings"

	"gocery/internal/infra"
	"gocery/internal/infra/db"
	"gocery/internal/pkg/pgconv"
	"gocery/internal/usecase/queries"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

const findCouponByCodeSQL = `
SELECT id, code, discount_percentage, expires_at, is_active
FROM coupons
WHERE code = $1
`

func (s *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var v queries.CouponView
	err := s.db.QueryRow(ctx, findCouponByCodeSQL, code).Scan(
		&v.ID, &v.Code, &v.DiscountPercentage, &v.ExpiresAt, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return &v, nil
}
